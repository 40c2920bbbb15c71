package inference

import "go.trai.ch/autodeps/internal/core/domain"

// MergeOverrides exposes the tree-level override steps for testing.
func (e *Engine) MergeOverrides(
	tree *domain.Tree,
	targets []*domain.Target,
	modules *domain.ModuleMap,
	o *domain.Overrides,
) error {
	return e.mergeOverrides(&state{tree: tree, targets: targets, modules: modules}, o)
}
