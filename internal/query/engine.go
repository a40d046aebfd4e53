// Package query maps raw, untrusted query strings to a subset of catalog
// assets using case-insensitive substring containment.
package query

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"catalog-explorer/internal/domain"
)

// Engine answers searches against a fixed asset source.
type Engine struct {
	catalog domain.AssetLister
}

var _ domain.Searcher = (*Engine)(nil)

// NewEngine creates an Engine over catalog.
func NewEngine(catalog domain.AssetLister) *Engine {
	return &Engine{catalog: catalog}
}

// Search runs rawQuery against the engine's catalog.
func (e *Engine) Search(rawQuery string) domain.SearchResult {
	return Search(rawQuery, e.catalog)
}

// Search filters catalog by rawQuery. An empty (after trimming) query
// selects every asset. Otherwise an asset matches when the query occurs in
// its name, description, or owner, ignoring case. Results keep catalog
// order. Search never fails.
func Search(rawQuery string, catalog domain.AssetLister) domain.SearchResult {
	all := catalog.AllAssets()
	q := Normalize(rawQuery)
	if q == "" {
		if all == nil {
			all = []domain.Asset{}
		}
		return domain.SearchResult{Assets: all, Reason: domain.ReasonEmptyQuery}
	}

	matches := make([]domain.Asset, 0, len(all))
	for i := range all {
		if Matches(&all[i], q) {
			matches = append(matches, all[i])
		}
	}
	return domain.SearchResult{Assets: matches, Reason: domain.ReasonKeyword}
}

// Normalize trims surrounding whitespace and lowercases q. Bytes that are
// not valid UTF-8 are kept as they are.
func Normalize(q string) string {
	return lower(strings.TrimSpace(q))
}

// Matches reports whether the normalized query q occurs in the asset's
// name, description, or owner. Columns, tags, and lineage are not searched.
func Matches(a *domain.Asset, q string) bool {
	return containsFold(a.Name, q) ||
		containsFold(a.Description, q) ||
		containsFold(a.Owner, q)
}

func containsFold(hay, needle string) bool {
	return strings.Contains(lower(hay), needle)
}

// lower is strings.ToLower except that invalid UTF-8 bytes pass through
// unchanged instead of becoming U+FFFD.
func lower(s string) string {
	if utf8.ValidString(s) {
		return strings.ToLower(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		i += size
	}
	return b.String()
}
