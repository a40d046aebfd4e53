// Package explorer is the application service the presentation layers talk
// to: listing, searching, single-asset detail, and lineage resolution.
package explorer

import (
	"log/slog"

	"catalog-explorer/internal/domain"
	"catalog-explorer/internal/query"
)

// Service exposes the catalog to API, UI, and CLI consumers.
type Service struct {
	catalog  domain.AssetReader
	searcher domain.Searcher
	logger   *slog.Logger
}

// NewService creates a Service. A nil logger discards output.
func NewService(catalog domain.AssetReader, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		catalog:  catalog,
		searcher: query.NewEngine(catalog),
		logger:   logger,
	}
}

// ListAssets returns every asset in catalog order.
func (s *Service) ListAssets() []domain.Asset {
	return s.catalog.AllAssets()
}

// ListAssetsPage returns one page of assets in catalog order together with
// the total number of assets.
func (s *Service) ListAssetsPage(page domain.PageRequest) ([]domain.Asset, int) {
	all := s.catalog.AllAssets()
	start, end := page.Window(len(all))
	return all[start:end], len(all)
}

// Count returns the number of indexed assets.
func (s *Service) Count() int {
	return s.catalog.Len()
}

// Search runs a free-text query against the catalog.
func (s *Service) Search(rawQuery string) domain.SearchResult {
	res := s.searcher.Search(rawQuery)
	s.logger.Debug("catalog search", "query", rawQuery, "reason", res.Reason, "matches", len(res.Assets))
	return res
}

// GetAsset returns the full asset record for id.
func (s *Service) GetAsset(id string) (*domain.Asset, error) {
	return s.catalog.GetAsset(id)
}
