package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithRequestID(t *testing.T, header string) (captured string, rec *httptest.ResponseRecorder) {
	t.Helper()
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))
	req := httptest.NewRequest(http.MethodGet, "/v1/assets", nil)
	if header != "" {
		req.Header.Set(RequestIDHeader, header)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return captured, rec
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	id, rec := serveWithRequestID(t, "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotEmpty(t, id)
	assert.Len(t, id, 36)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_HeaderValidation(t *testing.T) {
	tests := []struct {
		name     string
		headerID string
		keep     bool
	}{
		{name: "alphanumeric with separators", headerID: "req-42_a.b:c", keep: true},
		{name: "max length", headerID: strings.Repeat("x", 128), keep: true},
		{name: "too long", headerID: strings.Repeat("x", 129)},
		{name: "newline injection", headerID: "id\nlevel=ERROR"},
		{name: "carriage return", headerID: "id\rforged"},
		{name: "space", headerID: "two words"},
		{name: "markup", headerID: "<b>id</b>"},
		{name: "non ascii", headerID: "idé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, rec := serveWithRequestID(t, tt.headerID)

			require.NotEmpty(t, id)
			assert.Equal(t, id, rec.Header().Get(RequestIDHeader))
			if tt.keep {
				assert.Equal(t, tt.headerID, id)
			} else {
				assert.NotEqual(t, tt.headerID, id)
			}
		})
	}
}

func TestRequestIDFromContext_EmptyWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestIDFromContext(req.Context()))
}
