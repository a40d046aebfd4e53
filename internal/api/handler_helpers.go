package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"catalog-explorer/internal/domain"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// listResponse wraps a collection with its size.
type listResponse[T any] struct {
	Data          []T    `json:"data"`
	Total         int    `json:"total"`
	NextPageToken string `json:"next_page_token,omitempty"`
}

func newListResponse[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Data: items, Total: len(items)}
}

// pageFromQuery reads max_results and page_token from the query string.
func pageFromQuery(r *http.Request) (domain.PageRequest, error) {
	q := r.URL.Query()
	page := domain.PageRequest{PageToken: q.Get("page_token")}
	if v := q.Get("max_results"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return page, domain.ErrValidation("max_results must be a positive integer")
		}
		page.MaxResults = n
	}
	return page, nil
}
