// Package catalog holds the fixed, read-only collection of assets that the
// explorer serves for the lifetime of the process.
package catalog

import (
	"fmt"

	"catalog-explorer/internal/domain"
)

// Store is an immutable asset registry. It is safe for concurrent readers
// once New returns; nothing mutates it afterwards.
type Store struct {
	assets []domain.Asset
	byID   map[string]int
	byName map[string]int
}

var _ domain.AssetReader = (*Store)(nil)

// New validates the given assets and builds a Store preserving their order.
// The input slice is copied; later changes to it are not observed.
func New(assets []domain.Asset) (*Store, error) {
	s := &Store{
		assets: make([]domain.Asset, 0, len(assets)),
		byID:   make(map[string]int, len(assets)),
		byName: make(map[string]int, len(assets)),
	}
	for i := range assets {
		a := assets[i]
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("asset %d: %w", i, err)
		}
		if _, dup := s.byID[a.ID]; dup {
			return nil, domain.ErrConflict("duplicate asset id %q", a.ID)
		}
		s.byID[a.ID] = len(s.assets)
		if _, seen := s.byName[a.Name]; !seen {
			s.byName[a.Name] = len(s.assets)
		}
		s.assets = append(s.assets, a.Clone())
	}
	return s, nil
}

// Default returns a Store holding the built-in sample catalog.
func Default() *Store {
	s, err := New(Seed())
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid built-in seed: %v", err))
	}
	return s
}

// AllAssets returns every asset in construction order.
func (s *Store) AllAssets() []domain.Asset {
	out := make([]domain.Asset, len(s.assets))
	for i := range s.assets {
		out[i] = s.assets[i].Clone()
	}
	return out
}

// GetAsset returns the asset with the given id.
func (s *Store) GetAsset(id string) (*domain.Asset, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound("asset %q not found", id)
	}
	a := s.assets[i].Clone()
	return &a, nil
}

// FindByName returns the first asset, in store order, named name.
// Lineage references go through here, so a miss is not an error.
func (s *Store) FindByName(name string) (*domain.Asset, bool) {
	i, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	a := s.assets[i].Clone()
	return &a, true
}

// Len returns the number of assets.
func (s *Store) Len() int { return len(s.assets) }
