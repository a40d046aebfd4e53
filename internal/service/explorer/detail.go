package explorer

import "catalog-explorer/internal/domain"

// ColumnDetail is the presentation shape of one column.
type ColumnDetail struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// AssetDetail is the full record shown when a single asset is selected.
type AssetDetail struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Owner       string         `json:"owner"`
	Domain      string         `json:"domain"`
	UpdatedAt   string         `json:"updated_at"`
	Datasource  string         `json:"datasource"`
	Tags        []string       `json:"tags"`
	Columns     []ColumnDetail `json:"columns"`
}

// Describe resolves id to its detail projection. Unknown ids return the
// catalog's NotFoundError unchanged.
func (s *Service) Describe(id string) (*AssetDetail, error) {
	a, err := s.catalog.GetAsset(id)
	if err != nil {
		s.logger.Debug("describe asset failed", "asset_id", id, "error", err)
		return nil, err
	}
	d := NewAssetDetail(a)
	return &d, nil
}

// NewAssetDetail projects an asset into its detail shape, keeping column order.
func NewAssetDetail(a *domain.Asset) AssetDetail {
	cols := make([]ColumnDetail, len(a.Columns))
	for i, c := range a.Columns {
		cols[i] = ColumnDetail{
			Name:        c.Name,
			Type:        c.Type,
			Description: c.Description,
			Tags:        c.Tags.Values(),
		}
	}
	return AssetDetail{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Owner:       a.Owner,
		Domain:      a.Domain,
		UpdatedAt:   a.UpdatedAt,
		Datasource:  a.Datasource,
		Tags:        a.Tags.Values(),
		Columns:     cols,
	}
}
