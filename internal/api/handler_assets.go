package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"catalog-explorer/internal/domain"
)

// ListAssets handles GET /assets. Without paging parameters the first
// DefaultMaxResults assets are returned.
func (h *Handler) ListAssets(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	assets, total := h.explorer.ListAssetsPage(page)
	resp := newListResponse(assets)
	resp.Total = total
	resp.NextPageToken = domain.NextPageToken(page.Offset(), page.Limit(), total)
	writeJSON(w, http.StatusOK, resp)
}

// GetAsset handles GET /assets/{assetID}.
func (h *Handler) GetAsset(w http.ResponseWriter, r *http.Request) {
	detail, err := h.explorer.Describe(chi.URLParam(r, "assetID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// GetLineage handles GET /assets/{assetID}/lineage.
func (h *Handler) GetLineage(w http.ResponseWriter, r *http.Request) {
	view, err := h.explorer.Lineage(chi.URLParam(r, "assetID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
