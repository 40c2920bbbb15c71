package domain

// Invocation is one parsed compiler command line from the build log.
// It is never modified after parsing.
type Invocation struct {
	Compiler    string   `json:"compiler"`
	Sources     []string `json:"sources,omitempty"`
	Output      string   `json:"output,omitempty"`
	Libraries   []string `json:"libraries,omitempty"`
	LibraryDirs []string `json:"library_dirs,omitempty"`
	IncludeDirs []string `json:"include_dirs,omitempty"`
	Defines     []string `json:"defines,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
	Options     []string `json:"options,omitempty"`
	Optimise    string   `json:"optimise,omitempty"`
	CompileOnly bool     `json:"compile_only,omitempty"`
	NoWarnings  bool     `json:"no_warnings,omitempty"`
	Strip       bool     `json:"strip,omitempty"`
	Shared      bool     `json:"shared,omitempty"`
}

// LogData is the classified content of a build log.
type LogData struct {
	// Root is the module root, always terminated by a path separator.
	Root string
	// Compiles are the compile-only invocations, each producing one object file.
	Compiles []Invocation
	// Links are the invocations producing an executable or shared library.
	Links []Invocation
}

// CompilesFor returns the compile records whose output is one of the link's sources,
// in compile order.
func (d *LogData) CompilesFor(link *Invocation) []Invocation {
	inputs := make(map[string]struct{}, len(link.Sources))
	for _, s := range link.Sources {
		inputs[s] = struct{}{}
	}

	var out []Invocation
	for _, c := range d.Compiles {
		if _, ok := inputs[c.Output]; ok {
			out = append(out, c)
		}
	}
	return out
}
