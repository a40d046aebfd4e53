package domain

// AssetLister returns every Asset in the catalog's stable order.
type AssetLister interface {
	AllAssets() []Asset
}

// AssetGetter resolves a single Asset by id. Implementations return a
// *NotFoundError for unknown ids, never a partially-populated Asset.
type AssetGetter interface {
	GetAsset(id string) (*Asset, error)
}

// AssetNameResolver resolves a lineage reference by asset name.
type AssetNameResolver interface {
	FindByName(name string) (*Asset, bool)
}

// AssetReader is the read-only view of the catalog consumed by services.
type AssetReader interface {
	AssetLister
	AssetGetter
	AssetNameResolver
	Len() int
}
