package explorer

import "catalog-explorer/internal/domain"

// Lineage resolves the upstream and downstream references of asset id by
// name. Dangling references are reported unresolved, not as errors.
func (s *Service) Lineage(id string) (*domain.LineageView, error) {
	a, err := s.catalog.GetAsset(id)
	if err != nil {
		return nil, err
	}
	view := &domain.LineageView{
		AssetID:    a.ID,
		AssetName:  a.Name,
		Upstream:   s.resolveRefs(a.Lineage.Upstream, domain.LineageUpstream),
		Downstream: s.resolveRefs(a.Lineage.Downstream, domain.LineageDownstream),
	}
	return view, nil
}

func (s *Service) resolveRefs(names []string, dir domain.LineageDirection) []domain.LineageRef {
	refs := make([]domain.LineageRef, 0, len(names))
	for _, name := range names {
		ref := domain.LineageRef{Name: name, Direction: dir}
		if target, ok := s.catalog.FindByName(name); ok {
			ref.Resolved = true
			ref.AssetID = target.ID
		}
		refs = append(refs, ref)
	}
	return refs
}
