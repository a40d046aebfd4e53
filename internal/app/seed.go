package app

import (
	"fmt"
	"log/slog"

	"catalog-explorer/internal/catalog"
	"catalog-explorer/internal/config"
)

// loadCatalog builds the store from CATALOG_SEED_PATH, or the built-in
// sample catalog when no path is configured.
func loadCatalog(cfg *config.Config, logger *slog.Logger) (*catalog.Store, error) {
	if cfg.CatalogSeedPath == "" {
		store := catalog.Default()
		logger.Info("catalog loaded", "source", "built-in", "assets", store.Len())
		return store, nil
	}
	store, err := catalog.LoadFile(cfg.CatalogSeedPath)
	if err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	logger.Info("catalog loaded", "source", cfg.CatalogSeedPath, "assets", store.Len())
	return store, nil
}
