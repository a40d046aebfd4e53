package domain

// LineageDirection tells whether a reference feeds into or is fed by an asset.
type LineageDirection string

const (
	// LineageUpstream marks a source the asset reads from.
	LineageUpstream LineageDirection = "upstream"
	// LineageDownstream marks a consumer of the asset.
	LineageDownstream LineageDirection = "downstream"
)

// LineageRef is a lineage reference after lazy resolution against the
// catalog. AssetID is empty when the name does not resolve.
type LineageRef struct {
	Name      string           `json:"name"`
	Direction LineageDirection `json:"direction"`
	Resolved  bool             `json:"resolved"`
	AssetID   string           `json:"asset_id,omitempty"`
}

// LineageView is the resolved lineage of one asset.
type LineageView struct {
	AssetID    string       `json:"asset_id"`
	AssetName  string       `json:"asset_name"`
	Upstream   []LineageRef `json:"upstream"`
	Downstream []LineageRef `json:"downstream"`
}
