package domain

// Entry is one keyed item of an overrides section, kept in document order.
type Entry[V any] struct {
	Name  string
	Value V
}

// Overrides are hand-authored corrections layered onto the inferred tree.
// Every section is optional and preserves the order of the source document.
type Overrides struct {
	// ModulePaths registers extra module name -> relative path mappings.
	ModulePaths []Entry[string]
	// Dependencies adds library names to the named targets.
	Dependencies []Entry[[]string]
	// LibtbxRefresh attaches refresh script names to the named modules.
	LibtbxRefresh []Entry[[]string]
	// ForcedLocations moves the named targets to an explicit relative path.
	ForcedLocations []Entry[string]
	// TargetIncludes sets include paths on a target, or on a module's node.
	TargetIncludes []Entry[[]string]
}

// IsEmpty reports whether no section carries any entry.
func (o *Overrides) IsEmpty() bool {
	return o == nil || len(o.ModulePaths)+len(o.Dependencies)+len(o.LibtbxRefresh)+
		len(o.ForcedLocations)+len(o.TargetIncludes) == 0
}
