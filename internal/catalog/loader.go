package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"catalog-explorer/internal/domain"
)

// Seed document header values.
const (
	SupportedAPIVersion = "explorer/v1"
	KindAssetCatalog    = "AssetCatalog"
)

// Document is the YAML form of a catalog seed file.
type Document struct {
	APIVersion string         `yaml:"apiVersion"`
	Kind       string         `yaml:"kind"`
	Assets     []domain.Asset `yaml:"assets"`
}

// LoadFile reads a YAML seed document from path and builds a Store from it.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path) //nolint:gosec // path is operator-supplied config
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return s, nil
}

// Decode parses a YAML seed document. Unknown fields are rejected.
func Decode(r io.Reader) (*Store, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrValidation("empty catalog document")
		}
		return nil, fmt.Errorf("parse: %w", err)
	}
	if doc.APIVersion != SupportedAPIVersion {
		return nil, domain.ErrValidation("unsupported apiVersion %q (expected %q)", doc.APIVersion, SupportedAPIVersion)
	}
	if doc.Kind != KindAssetCatalog {
		return nil, domain.ErrValidation("unexpected kind %q (expected %q)", doc.Kind, KindAssetCatalog)
	}
	return New(doc.Assets)
}

// Encode writes the store's assets as a YAML seed document.
func Encode(w io.Writer, s *Store) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	doc := Document{
		APIVersion: SupportedAPIVersion,
		Kind:       KindAssetCatalog,
		Assets:     s.AllAssets(),
	}
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}
