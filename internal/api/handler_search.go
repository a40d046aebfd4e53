package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"catalog-explorer/internal/domain"
	"catalog-explorer/internal/session"
)

// maxAskBody bounds the POST /ask request body.
const maxAskBody = 64 << 10

type searchResponse struct {
	listResponse[domain.Asset]
	Reason string `json:"reason"`
}

// Search handles GET /search?q=. A missing q is the empty query.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	res := h.explorer.Search(r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, searchResponse{
		listResponse: newListResponse(res.Assets),
		Reason:       res.Reason,
	})
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Reply string `json:"reply"`
}

// Ask handles POST /ask: one chat turn answered from the catalog.
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAskBody))
	if err := dec.Decode(&req); err != nil {
		h.writeError(w, r, domain.ErrValidation("invalid request body: %v", err))
		return
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		h.writeError(w, r, domain.ErrValidation("invalid request body: unexpected data after JSON object"))
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		h.writeError(w, r, domain.ErrValidation("question is required"))
		return
	}
	s := session.New(h.explorer).Ask(req.Question)
	writeJSON(w, http.StatusOK, askResponse{Reply: s.LastReply()})
}
