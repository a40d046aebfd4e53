// Package ui serves the server-rendered catalog explorer: the asset list,
// a chat box answered from the catalog, and a per-asset detail sheet.
package ui

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	gomponents "maragu.dev/gomponents"

	"catalog-explorer/internal/domain"
	"catalog-explorer/internal/service/explorer"
	"catalog-explorer/internal/session"
)

// Handler renders the explorer pages.
type Handler struct {
	Explorer *explorer.Service
}

// NewHandler creates a Handler backed by svc.
func NewHandler(svc *explorer.Service) *Handler {
	return &Handler{Explorer: svc}
}

// Home renders the explorer list and chat. A non-blank q is answered as
// one chat turn.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	state := session.New(h.Explorer).Ask(q)
	renderHTML(w, http.StatusOK, homePage(homeData{
		Count:      h.Explorer.Count(),
		Assets:     h.Explorer.ListAssets(),
		Transcript: state.Transcript(),
	}))
}

// AssetDetail renders the detail sheet for one asset.
func (h *Handler) AssetDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.Explorer.Describe(chi.URLParam(r, "assetID"))
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			renderHTML(w, http.StatusNotFound, errorPage("Not found", notFound.Message))
			return
		}
		renderHTML(w, http.StatusInternalServerError, errorPage("Error", "Could not load asset."))
		return
	}
	renderHTML(w, http.StatusOK, detailPage(*detail))
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}
