package api

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-explorer/internal/domain"
)

// === pageFromQuery ===

func TestHelpers_pageFromQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		want    domain.PageRequest
		wantErr bool
	}{
		{name: "no params", target: "/assets", want: domain.PageRequest{}},
		{name: "max results", target: "/assets?max_results=5", want: domain.PageRequest{MaxResults: 5}},
		{name: "token passthrough", target: "/assets?page_token=abc", want: domain.PageRequest{PageToken: "abc"}},
		{name: "zero rejected", target: "/assets?max_results=0", wantErr: true},
		{name: "non numeric rejected", target: "/assets?max_results=lots", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := pageFromQuery(httptest.NewRequest("GET", tt.target, nil))
			if tt.wantErr {
				var ve *domain.ValidationError
				require.ErrorAs(t, err, &ve)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// === newListResponse ===

func TestHelpers_newListResponse(t *testing.T) {
	t.Parallel()

	empty := newListResponse[domain.Asset](nil)
	assert.NotNil(t, empty.Data)
	assert.Equal(t, 0, empty.Total)

	two := newListResponse([]string{"a", "b"})
	assert.Equal(t, 2, two.Total)
	assert.Empty(t, two.NextPageToken)
}
