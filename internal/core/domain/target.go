package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

const (
	// SharedObjectExt marks a link output as a shared library.
	SharedObjectExt = ".so"

	libPrefix = "lib"
)

// Target is a build artifact derived from one link record.
type Target struct {
	// Name is the artifact base name with any lib prefix and .so extension removed.
	Name string
	// Extension is empty for executables and SharedObjectExt for libraries.
	Extension string
	// OutputDir is the directory part of the link output, possibly empty.
	OutputDir string
	// Module is the owning module, empty when the target sits at the module root.
	Module string
	// Path is the module-root-relative directory the target belongs to.
	Path string
	// Root is the absolute module root the Path is relative to.
	Root string
	// Sources are the compile sources, verbatim and in link order.
	Sources []string
	// Libraries is the sorted set of linked library names.
	Libraries []string
	// IncludePaths is nil unless set by an override.
	IncludePaths []string
}

// NewTarget builds a Target from a link output path and its resolved location.
func NewTarget(output, module, relPath, root string, sources, libraries []string) *Target {
	base := filepath.Base(output)
	ext := ""
	if strings.HasSuffix(base, SharedObjectExt) {
		ext = filepath.Ext(base)
		base = strings.TrimSuffix(base, ext)
	}
	base = strings.TrimPrefix(base, libPrefix)

	outputDir := filepath.Dir(output)
	if outputDir == "." && !strings.HasPrefix(output, "./") {
		outputDir = ""
	}

	t := &Target{
		Name:      base,
		Extension: ext,
		OutputDir: outputDir,
		Module:    module,
		Path:      relPath,
		Root:      root,
		Sources:   sources,
	}
	t.AddLibraries(libraries...)
	return t
}

// IsLibrary reports whether the target is a shared library.
func (t *Target) IsLibrary() bool {
	return strings.HasSuffix(t.Extension, SharedObjectExt)
}

// IsExecutable reports whether the target is an executable.
func (t *Target) IsExecutable() bool {
	return !t.IsLibrary()
}

// IsTest reports whether the target is an executable whose name marks it as a test.
func (t *Target) IsTest() bool {
	return t.IsExecutable() && (strings.Contains(t.Name, "tst") || strings.Contains(t.Name, "test"))
}

// AddLibraries merges names into the library set.
func (t *Target) AddLibraries(names ...string) {
	t.Libraries = append(t.Libraries, names...)
	slices.Sort(t.Libraries)
	t.Libraries = slices.Compact(t.Libraries)
}

// AbsPath returns the absolute directory the target is described relative to.
func (t *Target) AbsPath() string {
	return filepath.Clean(filepath.Join(t.Root, t.Path))
}

// Entry describes the target for a manifest.
func (t *Target) Entry() TargetEntry {
	full := t.AbsPath()

	entry := TargetEntry{Name: t.Name}
	for _, src := range t.Sources {
		if filepath.IsAbs(src) {
			rel, err := filepath.Rel(full, src)
			if err != nil {
				rel = src
			}
			entry.Sources = append(entry.Sources, rel)
		}
		if !isUnder(src, full) {
			entry.GeneratedSources = append(entry.GeneratedSources, src)
		}
	}
	entry.Location = t.OutputDir
	if len(t.IncludePaths) > 0 {
		entry.IncludePaths = slices.Clone(t.IncludePaths)
	}
	if len(t.Libraries) > 0 {
		entry.Dependencies = slices.Clone(t.Libraries)
	}
	return entry
}

// isUnder reports whether path is dir or lies beneath it.
func isUnder(path, dir string) bool {
	if path == dir {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(dir, string(filepath.Separator))+string(filepath.Separator))
}
