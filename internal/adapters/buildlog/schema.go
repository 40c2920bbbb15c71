package buildlog

import "go.trai.ch/autodeps/internal/core/domain"

// flagSpec describes one recognised compiler flag.
type flagSpec struct {
	name       string
	takesValue bool
	repeatable bool
	apply      func(inv *domain.Invocation, value string)
}

// shortFlags is the fixed gcc/g++ grammar understood by the parser, keyed by flag letter.
// Flags that take a value accept it attached (-Ifoo) or as the next argument (-I foo).
var shortFlags = map[byte]flagSpec{
	'o': {name: "-o", takesValue: true, apply: func(inv *domain.Invocation, v string) {
		inv.Output = v
	}},
	'I': {name: "-I", takesValue: true, repeatable: true, apply: func(inv *domain.Invocation, v string) {
		inv.IncludeDirs = append(inv.IncludeDirs, v)
	}},
	'D': {name: "-D", takesValue: true, repeatable: true, apply: func(inv *domain.Invocation, v string) {
		inv.Defines = append(inv.Defines, v)
	}},
	'L': {name: "-L", takesValue: true, repeatable: true, apply: func(inv *domain.Invocation, v string) {
		inv.LibraryDirs = append(inv.LibraryDirs, v)
	}},
	'l': {name: "-l", takesValue: true, repeatable: true, apply: func(inv *domain.Invocation, v string) {
		inv.Libraries = append(inv.Libraries, v)
	}},
	'W': {name: "-W", takesValue: true, repeatable: true, apply: func(inv *domain.Invocation, v string) {
		inv.Warnings = append(inv.Warnings, v)
	}},
	'f': {name: "-f", takesValue: true, repeatable: true, apply: func(inv *domain.Invocation, v string) {
		inv.Options = append(inv.Options, v)
	}},
	'O': {name: "-O", takesValue: true, apply: func(inv *domain.Invocation, v string) {
		inv.Optimise = v
	}},
	'c': {name: "-c", apply: func(inv *domain.Invocation, _ string) {
		inv.CompileOnly = true
	}},
	'w': {name: "-w", apply: func(inv *domain.Invocation, _ string) {
		inv.NoWarnings = true
	}},
	's': {name: "-s", apply: func(inv *domain.Invocation, _ string) {
		inv.Strip = true
	}},
}

// sharedFlag is the only long flag. A literal -shared is rewritten to it before matching.
const sharedFlag = "--shared"

var longFlags = map[string]flagSpec{
	sharedFlag: {name: sharedFlag, apply: func(inv *domain.Invocation, _ string) {
		inv.Shared = true
	}},
}
