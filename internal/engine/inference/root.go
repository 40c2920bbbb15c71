package inference

import (
	"path/filepath"
	"strings"

	"go.trai.ch/autodeps/internal/core/domain"
	"go.trai.ch/zerr"
)

const separator = string(filepath.Separator)

// ResolveRoot returns the module root: the longest common prefix of every
// absolute source of every compile record. The prefix must end on a directory
// boundary.
func ResolveRoot(invocations []domain.Invocation) (string, error) {
	var prefix string
	found := false

	for i := range invocations {
		if !invocations[i].CompileOnly {
			continue
		}
		for _, src := range invocations[i].Sources {
			if !filepath.IsAbs(src) {
				continue
			}
			if !found {
				prefix, found = src, true
				continue
			}
			prefix = commonPrefix(prefix, src)
		}
	}

	if !found {
		return "", domain.ErrNoAbsoluteSources
	}
	if !strings.HasSuffix(prefix, separator) {
		return "", zerr.With(domain.ErrPartialModuleRoot, "root", prefix)
	}
	if prefix == separator {
		return "", zerr.With(domain.ErrNoCommonModuleRoot, "root", prefix)
	}
	return prefix, nil
}

// NormalizeRoot makes an explicitly given module root absolute and separator terminated.
func NormalizeRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "root", root)
	}
	if !strings.HasSuffix(abs, separator) {
		abs += separator
	}
	return abs, nil
}

// commonPrefix returns the longest common string prefix of a and b.
func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
