// Package testutil provides shared mock implementations of domain interfaces
// for use in tests across the codebase.
package testutil

import (
	"sync"

	"catalog-explorer/internal/domain"
)

// === Asset Reader Mock ===

// MockAssetReader implements domain.AssetReader. Behaviour is supplied per
// test through the Fn fields; unset fields act like an empty catalog.
type MockAssetReader struct {
	AllAssetsFn  func() []domain.Asset
	GetAssetFn   func(id string) (*domain.Asset, error)
	FindByNameFn func(name string) (*domain.Asset, bool)
	LenFn        func() int
}

// AllAssets implements the interface method for testing.
func (m *MockAssetReader) AllAssets() []domain.Asset {
	if m.AllAssetsFn == nil {
		return nil
	}
	return m.AllAssetsFn()
}

// GetAsset implements the interface method for testing.
func (m *MockAssetReader) GetAsset(id string) (*domain.Asset, error) {
	if m.GetAssetFn == nil {
		return nil, domain.ErrNotFound("asset %q not found", id)
	}
	return m.GetAssetFn(id)
}

// FindByName implements the interface method for testing.
func (m *MockAssetReader) FindByName(name string) (*domain.Asset, bool) {
	if m.FindByNameFn == nil {
		return nil, false
	}
	return m.FindByNameFn(name)
}

// Len implements the interface method for testing.
func (m *MockAssetReader) Len() int {
	if m.LenFn == nil {
		return 0
	}
	return m.LenFn()
}

// === Searcher Mock ===

// MockSearcher implements domain.Searcher and records every query it sees.
type MockSearcher struct {
	SearchFn func(rawQuery string) domain.SearchResult

	mu      sync.Mutex
	Queries []string
}

// Search implements the interface method for testing.
func (m *MockSearcher) Search(rawQuery string) domain.SearchResult {
	m.mu.Lock()
	m.Queries = append(m.Queries, rawQuery)
	m.mu.Unlock()
	if m.SearchFn == nil {
		return domain.SearchResult{Assets: []domain.Asset{}, Reason: domain.ReasonKeyword}
	}
	return m.SearchFn(rawQuery)
}

// Calls returns a copy of the recorded queries.
func (m *MockSearcher) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Queries...)
}
