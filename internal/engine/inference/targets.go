package inference

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/autodeps/internal/core/domain"
)

// implicitLibrary is linked into everything and says nothing about structure.
const implicitLibrary = "m"

// resolveTargets builds one target per link record and records the canonical
// path of every module it meets.
func (e *Engine) resolveTargets(data *domain.LogData, container string) ([]*domain.Target, *domain.ModuleMap) {
	modules := domain.NewModuleMap()
	targets := make([]*domain.Target, 0, len(data.Links))

	for i := range data.Links {
		link := &data.Links[i]

		var sources []string
		for _, c := range data.CompilesFor(link) {
			sources = append(sources, c.Sources...)
		}

		relPath, module := ".", ""
		if dir, ok := effectiveDir(sources, data.Root); ok {
			relPath = relativeTo(data.Root, dir)
			var modPath string
			module, modPath = moduleOf(relPath, container)
			if module != "" {
				modules.Set(module, modPath)
			}
		} else {
			e.logger.Warn(fmt.Sprintf("target %s has only generated sources", link.Output))
		}

		libs := slices.DeleteFunc(slices.Clone(link.Libraries), func(l string) bool {
			return l == implicitLibrary
		})
		targets = append(targets, domain.NewTarget(link.Output, module, relPath, data.Root, sources, libs))
	}

	return targets, modules
}

// effectiveDir returns the single directory a target's sources live in.
// Several contributing directories collapse to the parent of their common
// directory prefix. Directories outside root do not contribute.
func effectiveDir(sources []string, root string) (string, bool) {
	seen := make(map[string]struct{})
	for _, src := range sources {
		if !filepath.IsAbs(src) {
			continue
		}
		dir := filepath.Dir(src)
		if !isWithin(dir, root) {
			continue
		}
		seen[dir] = struct{}{}
	}

	dirs := slices.Sorted(maps.Keys(seen))
	switch len(dirs) {
	case 0:
		return "", false
	case 1:
		return dirs[0], true
	}

	prefix := dirs[0] + separator
	for _, d := range dirs[1:] {
		prefix = commonPrefix(prefix, d+separator)
	}
	return filepath.Dir(prefix), true
}

// relativeTo returns dir relative to root in slash form, "." for the root itself.
func relativeTo(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return "."
	}
	return filepath.ToSlash(rel)
}

// moduleOf derives the module name and its canonical path from a root-relative path.
// The container segment is skipped: the segment beneath it names the module.
func moduleOf(relPath, container string) (module, modPath string) {
	segs := domain.SplitPath(relPath)
	if len(segs) == 0 {
		return "", ""
	}
	if segs[0] != container {
		return segs[0], segs[0]
	}
	if len(segs) == 1 {
		return "", ""
	}
	return segs[1], container + "/" + segs[1]
}

// isWithin reports whether dir is root or lies beneath it. root ends with a separator.
func isWithin(dir, root string) bool {
	return dir+separator == root || strings.HasPrefix(dir, root)
}

// ExternalDependencies returns the sorted libraries linked by some target
// that no target in the log provides.
func ExternalDependencies(targets []*domain.Target) []string {
	names := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		names[t.Name] = struct{}{}
	}

	external := make(map[string]struct{})
	for _, t := range targets {
		for _, lib := range t.Libraries {
			if _, ok := names[lib]; !ok {
				external[lib] = struct{}{}
			}
		}
	}
	return slices.Sorted(maps.Keys(external))
}

// relocateModuleNamed moves a target named after its own module to that
// module's canonical path. Directory collapsing can leave such a target in a
// subdirectory of its module.
func (e *Engine) relocateModuleNamed(targets []*domain.Target, modules *domain.ModuleMap) {
	for _, t := range targets {
		if t.Module == "" || t.Name != t.Module {
			continue
		}
		canonical, ok := modules.Path(t.Module)
		if !ok || canonical == t.Path {
			continue
		}
		e.logger.Info(fmt.Sprintf("moving module-named %s from %s to %s", t.Name, t.Path, canonical))
		t.Path = canonical
	}
}

// BuildTree inserts every target into a fresh tree along its path.
func BuildTree(targets []*domain.Target, container string) *domain.Tree {
	tree := domain.NewTree(container)
	for _, t := range targets {
		tree.Insert(t)
	}
	return tree
}
