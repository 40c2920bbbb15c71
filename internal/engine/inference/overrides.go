package inference

import (
	"fmt"
	"slices"

	"go.trai.ch/autodeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// state is what override steps read and transform.
type state struct {
	tree    *domain.Tree
	targets []*domain.Target
	modules *domain.ModuleMap
}

// findTarget returns the first target with the given name in link order.
func (s *state) findTarget(name string) *domain.Target {
	i := slices.IndexFunc(s.targets, func(t *domain.Target) bool { return t.Name == name })
	if i < 0 {
		return nil
	}
	return s.targets[i]
}

// overrideStep validates its whole section before changing anything, so a
// failing step leaves the state as the previous step produced it.
type overrideStep func(s *state, o *domain.Overrides) error

// applyModulePaths registers extra module locations. It runs before the tree
// exists so relocation and later steps see them.
func (e *Engine) applyModulePaths(o *domain.Overrides, modules *domain.ModuleMap) {
	if o == nil {
		return
	}
	for _, entry := range o.ModulePaths {
		modules.Set(entry.Name, entry.Value)
	}
}

// mergeOverrides applies the tree-level sections in their fixed order.
func (e *Engine) mergeOverrides(s *state, o *domain.Overrides) error {
	if o == nil {
		return nil
	}

	steps := []overrideStep{
		e.mergeDependencies,
		e.mergeRefresh,
		e.mergeForcedLocations,
		e.mergeIncludes,
	}
	for _, step := range steps {
		if err := step(s, o); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) mergeDependencies(s *state, o *domain.Overrides) error {
	for _, entry := range o.Dependencies {
		t := s.findTarget(entry.Name)
		if t == nil {
			e.logger.Warn(fmt.Sprintf("could not resolve target %s to add manual dependencies", entry.Name))
			continue
		}
		t.AddLibraries(entry.Value...)
	}
	return nil
}

func (e *Engine) mergeRefresh(s *state, o *domain.Overrides) error {
	for _, entry := range o.LibtbxRefresh {
		if !s.modules.Has(entry.Name) {
			return unknownModule(entry.Name, "libtbx_refresh")
		}
	}

	for _, entry := range o.LibtbxRefresh {
		modPath, _ := s.modules.Path(entry.Name)
		s.tree.Node(modPath).Refresh = slices.Clone(entry.Value)
	}
	return nil
}

func (e *Engine) mergeForcedLocations(s *state, o *domain.Overrides) error {
	moves := make([]*domain.Target, len(o.ForcedLocations))
	for i, entry := range o.ForcedLocations {
		t := s.findTarget(entry.Name)
		if t == nil {
			err := zerr.With(domain.ErrUnknownTarget, "target", entry.Name)
			return zerr.With(err, "section", "forced_locations")
		}
		moves[i] = t
	}

	for i, entry := range o.ForcedLocations {
		t := moves[i]
		e.logger.Info(fmt.Sprintf("override: moving %s from %s to %s", t.Name, t.Path, entry.Value))
		s.tree.Move(t, entry.Value)
	}
	return nil
}

func (e *Engine) mergeIncludes(s *state, o *domain.Overrides) error {
	for _, entry := range o.TargetIncludes {
		if s.findTarget(entry.Name) == nil && !s.modules.Has(entry.Name) {
			err := zerr.With(domain.ErrUnknownIncludeName, "name", entry.Name)
			return zerr.With(err, "section", "target_includes")
		}
	}

	for _, entry := range o.TargetIncludes {
		if t := s.findTarget(entry.Name); t != nil {
			t.IncludePaths = slices.Clone(entry.Value)
			continue
		}
		modPath, _ := s.modules.Path(entry.Name)
		s.tree.Node(modPath).IncludePaths = slices.Clone(entry.Value)
	}
	return nil
}

func unknownModule(name, section string) error {
	err := zerr.With(domain.ErrUnknownModule, "module", name)
	return zerr.With(err, "section", section)
}
