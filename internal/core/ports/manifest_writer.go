package ports

import "go.trai.ch/autodeps/internal/core/domain"

// ManifestWriter defines the interface for persisting the build tree.
//
//go:generate mockgen -source=manifest_writer.go -destination=mocks/mock_manifest_writer.go -package=mocks
type ManifestWriter interface {
	// Write stores one manifest named filename per tree node below outputRoot
	// and returns the written paths.
	Write(outputRoot string, tree *domain.Tree, filename string) ([]string, error)
}
