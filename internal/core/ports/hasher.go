package ports

// Hasher defines the interface for content hashing.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash returns the hash of a file's content.
	ComputeFileHash(path string) (uint64, error)
}
