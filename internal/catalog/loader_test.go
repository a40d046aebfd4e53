package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-explorer/internal/domain"
)

const sampleDoc = `apiVersion: explorer/v1
kind: AssetCatalog
assets:
  - id: events_v1
    name: raw_events
    domain: tracking
    description: Clickstream events.
    owner: data.platform@company.com
    tags: [bronze, bronze]
    datasource: kafka://events
    updated_at: "2025-07-01"
    columns:
      - name: event_id
        type: uuid
      - name: user_email
        type: text
        tags: [pii]
    lineage:
      downstream: [sales_orders]
`

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	all := s.AllAssets()
	require.Len(t, all, 1)
	a := all[0]
	assert.Equal(t, "events_v1", a.ID)
	assert.Equal(t, "raw_events", a.Name)
	assert.Equal(t, "2025-07-01", a.UpdatedAt)
	assert.Equal(t, []string{"bronze"}, a.Tags.Values())
	require.Len(t, a.Columns, 2)
	assert.Equal(t, "", a.Columns[0].Description)
	assert.True(t, a.Columns[1].Tags.Has("pii"))
	assert.Equal(t, []string{"sales_orders"}, a.Lineage.Downstream)
	assert.Empty(t, a.Lineage.Upstream)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty", doc: ""},
		{name: "wrong_api_version", doc: "apiVersion: v0\nkind: AssetCatalog\nassets: []\n"},
		{name: "wrong_kind", doc: "apiVersion: explorer/v1\nkind: Table\nassets: []\n"},
		{name: "unknown_field", doc: "apiVersion: explorer/v1\nkind: AssetCatalog\nassets:\n  - id: a\n    name: b\n    colour: red\n"},
		{name: "missing_name", doc: "apiVersion: explorer/v1\nkind: AssetCatalog\nassets:\n  - id: a\n"},
		{name: "not_yaml", doc: "{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Nil(t, s)
		})
	}
}

func TestDecode_ValidationErrorKind(t *testing.T) {
	_, err := Decode(strings.NewReader("apiVersion: explorer/v1\nkind: AssetCatalog\nassets:\n  - name: nameless\n"))

	var validation *domain.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestEncode_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Default()))

	s, err := Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, Default().AllAssets(), s.AllAssets())
}

func TestLoadFile(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o600))

		s, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open catalog")
	})
}
