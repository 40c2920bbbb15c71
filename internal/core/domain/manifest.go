package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Manifest is the declarative document written for one tree node.
type Manifest struct {
	Generate           *bool         `yaml:"generate,omitempty"`
	Project            string        `yaml:"project,omitempty"`
	ProjectIncludePath []string      `yaml:"project_include_path,omitempty"`
	Subdirectories     []string      `yaml:"subdirectories,omitempty"`
	LibtbxRefresh      []string      `yaml:"libtbx_refresh,omitempty"`
	SharedLibraries    []TargetEntry `yaml:"shared_libraries,omitempty"`
	Tests              []TargetEntry `yaml:"tests,omitempty"`
	Programs           []TargetEntry `yaml:"programs,omitempty"`
}

// TargetEntry describes one artifact inside a Manifest.
type TargetEntry struct {
	Name             string   `yaml:"name"`
	Sources          []string `yaml:"sources,omitempty"`
	Location         string   `yaml:"location,omitempty"`
	GeneratedSources []string `yaml:"generated_sources,omitempty"`
	IncludePaths     []string `yaml:"include_paths,omitempty"`
	Dependencies     []string `yaml:"dependencies,omitempty"`
}

// Manifest builds the document for this node.
func (n *Node) Manifest() (Manifest, error) {
	var m Manifest
	if !n.Generate {
		generate := false
		m.Generate = &generate
	}

	if n.IsModuleBoundary() {
		m.Project = n.Module
		if len(n.IncludePaths) > 0 {
			m.ProjectIncludePath = slices.Clone(n.IncludePaths)
		}
	}
	if len(n.order) > 0 {
		m.Subdirectories = n.Subdirectories()
	}
	if len(n.Refresh) > 0 {
		m.LibtbxRefresh = slices.Clone(n.Refresh)
	}

	for _, t := range n.Targets {
		switch {
		case t.IsLibrary():
			m.SharedLibraries = append(m.SharedLibraries, t.Entry())
		case t.IsTest():
			m.Tests = append(m.Tests, t.Entry())
		case t.IsExecutable():
			m.Programs = append(m.Programs, t.Entry())
		default:
			err := zerr.With(ErrCannotClassifyTarget, "target", t.Name)
			return Manifest{}, zerr.With(err, "path", n.Path)
		}
	}
	return m, nil
}
