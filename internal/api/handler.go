// Package api provides the JSON HTTP handlers for the catalog explorer.
package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"catalog-explorer/internal/service/explorer"
)

// Handler serves the /v1 API.
type Handler struct {
	explorer *explorer.Service
	logger   *slog.Logger
}

// NewHandler creates a Handler backed by svc.
func NewHandler(svc *explorer.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{explorer: svc, logger: logger}
}

// Routes registers the API endpoints on r. Callers mount r under /v1.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/assets", h.ListAssets)
	r.Get("/assets/{assetID}", h.GetAsset)
	r.Get("/assets/{assetID}/lineage", h.GetLineage)
	r.Get("/search", h.Search)
	r.Post("/ask", h.Ask)
}
