package domain

import "path/filepath"

const (
	// AutodepsDirName is the name of the internal workspace directory.
	AutodepsDirName = ".autodeps"

	// CacheDirName is the name of the parse cache directory.
	CacheDirName = "cache"

	// DefaultBuildLog is the build log read when none is given.
	DefaultBuildLog = "buildbuild.log"

	// DefaultOverridesFile is the overrides document read when none is given.
	DefaultOverridesFile = "autogen.yaml"

	// DefaultManifestName is the file name written into every tree directory.
	DefaultManifestName = "AutoBuildDeps.yaml"

	// DefaultContainer is the directory that groups modules without being one.
	DefaultContainer = "cctbx_project"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultCachePath returns the default path for the parse cache.
// It joins .autodeps and cache.
func DefaultCachePath() string {
	return filepath.Join(AutodepsDirName, CacheDirName)
}
