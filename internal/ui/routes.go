package ui

import "github.com/go-chi/chi/v5"

// MountRoutes registers the UI pages on r.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.Home)
	r.Get("/assets/{assetID}", h.AssetDetail)
}
