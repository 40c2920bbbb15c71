package ports

import "go.trai.ch/autodeps/internal/core/domain"

// BuildLogReader defines the interface for turning a build log into compiler invocations.
//
//go:generate mockgen -source=build_log.go -destination=mocks/mock_build_log.go -package=mocks
type BuildLogReader interface {
	// Read parses every gcc/g++ line of the log at path, in log order.
	Read(path string) ([]domain.Invocation, error)
}
