package config

// Section keys of the overrides document.
const (
	keyModulePaths     = "module_paths"
	keyDependencies    = "dependencies"
	keyLibtbxRefresh   = "libtbx_refresh"
	keyForcedLocations = "forced_locations"
	keyTargetIncludes  = "target_includes"
)

// valueShape describes what a list section entry value must decode to.
type valueShape int

const (
	shapeList valueShape = iota
	// shapeScalarOrList accepts a single string as a one-element list.
	shapeScalarOrList
)
