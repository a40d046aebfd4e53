package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-explorer/internal/domain"
)

func TestStore_AllAssets(t *testing.T) {
	t.Run("construction_order", func(t *testing.T) {
		s := Default()

		all := s.AllAssets()

		require.Len(t, all, 2)
		assert.Equal(t, "sales_orders", all[0].Name)
		assert.Equal(t, "customers", all[1].Name)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("returns_copies", func(t *testing.T) {
		s := Default()

		all := s.AllAssets()
		all[0].Name = "mutated"
		all[0].Columns[0].Name = "mutated"
		all[0].Tags["mutated"] = struct{}{}

		fresh := s.AllAssets()
		assert.Equal(t, "sales_orders", fresh[0].Name)
		assert.Equal(t, "order_id", fresh[0].Columns[0].Name)
		assert.False(t, fresh[0].Tags.Has("mutated"))
	})

	t.Run("empty_store", func(t *testing.T) {
		s, err := New(nil)
		require.NoError(t, err)
		assert.Empty(t, s.AllAssets())
		assert.Equal(t, 0, s.Len())
	})
}

func TestStore_GetAsset(t *testing.T) {
	s := Default()

	t.Run("found", func(t *testing.T) {
		a, err := s.GetAsset("sales_orders_v1")

		require.NoError(t, err)
		require.NotNil(t, a)
		assert.Equal(t, "sales_orders_v1", a.ID)
		assert.Equal(t, "sales_orders", a.Name)
		require.Len(t, a.Columns, 6)
		last := a.Columns[len(a.Columns)-1]
		assert.Equal(t, "created_at", last.Name)
		assert.Equal(t, "timestamptz", last.Type)
	})

	t.Run("not_found", func(t *testing.T) {
		a, err := s.GetAsset("does_not_exist")

		require.Error(t, err)
		assert.Nil(t, a)
		var notFound *domain.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("lookup_is_by_id_not_name", func(t *testing.T) {
		_, err := s.GetAsset("sales_orders")

		var notFound *domain.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestStore_FindByName(t *testing.T) {
	s := Default()

	a, ok := s.FindByName("customers")
	require.True(t, ok)
	assert.Equal(t, "customers_v2", a.ID)

	a, ok = s.FindByName("raw_events")
	assert.False(t, ok)
	assert.Nil(t, a)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		assets  []domain.Asset
		wantErr interface{}
	}{
		{
			name:    "empty_id",
			assets:  []domain.Asset{{Name: "x"}},
			wantErr: &domain.ValidationError{},
		},
		{
			name:    "empty_name",
			assets:  []domain.Asset{{ID: "x"}},
			wantErr: &domain.ValidationError{},
		},
		{
			name:    "duplicate_id",
			assets:  []domain.Asset{{ID: "a", Name: "one"}, {ID: "a", Name: "two"}},
			wantErr: &domain.ConflictError{},
		},
		{
			name: "duplicate_column",
			assets: []domain.Asset{{ID: "a", Name: "one", Columns: []domain.Column{
				{Name: "id", Type: "uuid"}, {Name: "id", Type: "text"},
			}}},
			wantErr: &domain.ValidationError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.assets)

			require.Error(t, err)
			assert.Nil(t, s)
			switch want := tt.wantErr.(type) {
			case *domain.ValidationError:
				assert.ErrorAs(t, err, &want)
			case *domain.ConflictError:
				assert.ErrorAs(t, err, &want)
			}
		})
	}
}

func TestNew_NormalisesEmptyCollections(t *testing.T) {
	s, err := New([]domain.Asset{{ID: "a", Name: "bare"}})
	require.NoError(t, err)

	a, err := s.GetAsset("a")
	require.NoError(t, err)
	assert.NotNil(t, a.Columns)
	assert.Empty(t, a.Columns)
	assert.NotNil(t, a.Tags)
	assert.NotNil(t, a.Lineage.Upstream)
	assert.NotNil(t, a.Lineage.Downstream)
}

func TestNew_DuplicateNamesAllowed(t *testing.T) {
	s, err := New([]domain.Asset{
		{ID: "a1", Name: "orders"},
		{ID: "a2", Name: "orders"},
	})
	require.NoError(t, err)

	a, ok := s.FindByName("orders")
	require.True(t, ok)
	assert.Equal(t, "a1", a.ID, "first asset in store order wins")
}

func TestNew_CopiesInput(t *testing.T) {
	in := []domain.Asset{{ID: "a", Name: "orders"}}
	s, err := New(in)
	require.NoError(t, err)

	in[0].Name = "changed"

	a, err := s.GetAsset("a")
	require.NoError(t, err)
	assert.Equal(t, "orders", a.Name)
}
