package ports

import "go.trai.ch/autodeps/internal/core/domain"

// OverridesLoader defines the interface for loading the overrides document.
//
//go:generate mockgen -source=overrides_loader.go -destination=mocks/mock_overrides_loader.go -package=mocks
type OverridesLoader interface {
	// Load reads the document at path. It returns nil, nil when the file does not exist.
	Load(path string) (*domain.Overrides, error)
}
