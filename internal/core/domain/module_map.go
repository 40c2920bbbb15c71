package domain

import (
	"maps"
	"slices"
)

// ModuleMap maps module names to their canonical module-root-relative path.
// It is threaded explicitly through target resolution and tree assembly.
type ModuleMap struct {
	paths map[string]string
}

// NewModuleMap creates an empty ModuleMap.
func NewModuleMap() *ModuleMap {
	return &ModuleMap{paths: make(map[string]string)}
}

// Set records the canonical path of a module, replacing any previous one.
func (m *ModuleMap) Set(module, path string) {
	m.paths[module] = path
}

// Path returns the canonical path of a module.
func (m *ModuleMap) Path(module string) (string, bool) {
	p, ok := m.paths[module]
	return p, ok
}

// Has reports whether the module is known.
func (m *ModuleMap) Has(module string) bool {
	_, ok := m.paths[module]
	return ok
}

// Names returns the known module names in sorted order.
func (m *ModuleMap) Names() []string {
	return slices.Sorted(maps.Keys(m.paths))
}

// Len returns the number of known modules.
func (m *ModuleMap) Len() int {
	return len(m.paths)
}
