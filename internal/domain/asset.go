package domain

// Column describes one column of an Asset. Name is unique within its Asset.
type Column struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description,omitempty"`
	Tags        TagSet `json:"tags" yaml:"tags,omitempty"`
}

// Lineage holds upstream and downstream asset references by name.
// References are weak: a name with no matching Asset is a valid state.
type Lineage struct {
	Upstream   []string `json:"upstream" yaml:"upstream,omitempty"`
	Downstream []string `json:"downstream" yaml:"downstream,omitempty"`
}

// Asset is a cataloged dataset with its descriptive metadata.
type Asset struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Domain      string   `json:"domain" yaml:"domain,omitempty"`
	Description string   `json:"description" yaml:"description,omitempty"`
	Owner       string   `json:"owner" yaml:"owner,omitempty"`
	Tags        TagSet   `json:"tags" yaml:"tags,omitempty"`
	Datasource  string   `json:"datasource" yaml:"datasource,omitempty"`
	UpdatedAt   string   `json:"updated_at" yaml:"updated_at,omitempty"` // YYYY-MM-DD
	Columns     []Column `json:"columns" yaml:"columns"`
	Lineage     Lineage  `json:"lineage" yaml:"lineage,omitempty"`
}

// Validate checks the invariants every Asset must hold.
func (a *Asset) Validate() error {
	if a.ID == "" {
		return ErrValidation("asset id is required")
	}
	if a.Name == "" {
		return ErrValidation("asset %q: name is required", a.ID)
	}
	seen := make(map[string]struct{}, len(a.Columns))
	for i, c := range a.Columns {
		if c.Name == "" {
			return ErrValidation("asset %q: column %d: name is required", a.ID, i)
		}
		if _, dup := seen[c.Name]; dup {
			return ErrValidation("asset %q: duplicate column %q", a.ID, c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}

// Clone returns a deep copy of the Asset with explicit empty defaults
// in place of nil collections.
func (a Asset) Clone() Asset {
	out := a
	out.Tags = a.Tags.Clone()
	out.Columns = make([]Column, len(a.Columns))
	for i, c := range a.Columns {
		c.Tags = c.Tags.Clone()
		out.Columns[i] = c
	}
	out.Lineage = Lineage{
		Upstream:   append(make([]string, 0, len(a.Lineage.Upstream)), a.Lineage.Upstream...),
		Downstream: append(make([]string, 0, len(a.Lineage.Downstream)), a.Lineage.Downstream...),
	}
	return out
}
