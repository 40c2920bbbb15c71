package ports

import "go.trai.ch/autodeps/internal/core/domain"

// ParseCache defines the interface for caching parsed build logs on disk.
// It is an optimisation only: a miss or a disabled cache never changes results.
//
//go:generate mockgen -source=parse_cache.go -destination=mocks/mock_parse_cache.go -package=mocks
type ParseCache interface {
	// Get returns the cached invocations for the log at logPath.
	// It reports false when there is no entry or the entry is older than the log.
	Get(dir, logPath string) ([]domain.Invocation, bool, error)

	// Put stores the invocations parsed from the log at logPath.
	Put(dir, logPath string, invocations []domain.Invocation) error
}
