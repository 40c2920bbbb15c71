// Package buildlog parses gcc/g++ command lines out of a raw build log.
package buildlog

import (
	"slices"
	"strings"

	"go.trai.ch/autodeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// Compilers are the first tokens that mark a log line as a compiler invocation.
var Compilers = []string{"gcc", "g++"}

// IsInvocation reports whether the first token of line is one of the recognised compilers.
func IsInvocation(line string) bool {
	fields := strings.Fields(line)
	return len(fields) > 0 && slices.Contains(Compilers, fields[0])
}

// ParseLine parses one compiler invocation line.
// The caller must have checked the line with IsInvocation.
func ParseLine(line string) (domain.Invocation, error) {
	args, err := Split(line)
	if err != nil {
		return domain.Invocation{}, zerr.With(zerr.Wrap(err, domain.ErrInvalidInvocation.Error()), "line", line)
	}
	if len(args) == 0 || !slices.Contains(Compilers, args[0]) {
		return domain.Invocation{}, invalid(line, "not a compiler invocation")
	}

	inv, reason := parseArgs(args[1:])
	if reason != "" {
		return domain.Invocation{}, invalid(line, reason)
	}
	inv.Compiler = args[0]
	return inv, nil
}

func invalid(line, reason string) error {
	err := zerr.With(domain.ErrInvalidInvocation, "reason", reason)
	return zerr.With(err, "line", line)
}

// parseArgs matches args against the flag schema.
// It returns a non-empty reason when the arguments do not fit the grammar.
func parseArgs(args []string) (domain.Invocation, string) {
	var inv domain.Invocation
	seen := make(map[string]bool)

	use := func(spec flagSpec, value string) string {
		if seen[spec.name] && !spec.repeatable {
			return "flag " + spec.name + " given more than once"
		}
		seen[spec.name] = true
		spec.apply(&inv, value)
		return ""
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "-shared" {
			arg = sharedFlag
		}

		switch {
		case arg == "--":
			inv.Sources = append(inv.Sources, args[i+1:]...)
			i = len(args)

		case strings.HasPrefix(arg, "--"):
			spec, ok := longFlags[arg]
			if !ok {
				return inv, "unknown flag " + arg
			}
			if reason := use(spec, ""); reason != "" {
				return inv, reason
			}

		case len(arg) > 1 && arg[0] == '-':
			for j := 1; j < len(arg); j++ {
				spec, ok := shortFlags[arg[j]]
				if !ok {
					return inv, "unknown flag -" + string(arg[j]) + " in " + arg
				}
				if !spec.takesValue {
					if reason := use(spec, ""); reason != "" {
						return inv, reason
					}
					continue
				}

				value := arg[j+1:]
				if value == "" {
					if i+1 >= len(args) {
						return inv, "flag " + spec.name + " requires a value"
					}
					i++
					value = args[i]
				}
				if reason := use(spec, value); reason != "" {
					return inv, reason
				}
				break
			}

		default:
			inv.Sources = append(inv.Sources, arg)
		}
	}

	if len(inv.Libraries) > 0 {
		slices.Sort(inv.Libraries)
		inv.Libraries = slices.Compact(inv.Libraries)
	}
	return inv, ""
}
