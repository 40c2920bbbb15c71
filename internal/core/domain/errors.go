package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidInvocation is returned when a compiler line does not match the flag grammar.
	ErrInvalidInvocation = zerr.New("invalid compiler invocation")

	// ErrNoAbsoluteSources is returned when no compile record has an absolute source path.
	ErrNoAbsoluteSources = zerr.New("no absolute source paths to derive a module root from")

	// ErrPartialModuleRoot is returned when the common source prefix stops mid-component.
	ErrPartialModuleRoot = zerr.New("module root is not a directory boundary")

	// ErrNoCommonModuleRoot is returned when the only shared prefix is the filesystem root.
	ErrNoCommonModuleRoot = zerr.New("compiled sources share no common directory")

	// ErrNoSourceForTarget is returned when a link input has no matching compile output.
	ErrNoSourceForTarget = zerr.New("no source for target")

	// ErrDuplicateCompileOutput is returned when a link input is produced by more than one compile record.
	ErrDuplicateCompileOutput = zerr.New("object file is produced by more than one compile")

	// ErrUnknownModule is returned when an override names a module that was never resolved.
	ErrUnknownModule = zerr.New("unknown module")

	// ErrUnknownTarget is returned when an override names a target that does not exist.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrUnknownIncludeName is returned when target_includes names neither a target nor a module.
	ErrUnknownIncludeName = zerr.New("name for extra includes is not a target or module")

	// ErrCannotClassifyTarget is returned when a target is neither library, test, nor program.
	ErrCannotClassifyTarget = zerr.New("cannot classify target")

	// ErrInvalidOutputDir is reported when the manifest output root is not a directory.
	ErrInvalidOutputDir = zerr.New("target must be a valid directory")

	// ErrLogReadFailed is returned when the build log cannot be read.
	ErrLogReadFailed = zerr.New("failed to read build log")

	// ErrOverridesReadFailed is returned when the overrides document cannot be read.
	ErrOverridesReadFailed = zerr.New("failed to read overrides file")

	// ErrOverridesParseFailed is returned when the overrides document cannot be parsed.
	ErrOverridesParseFailed = zerr.New("failed to parse overrides file")

	// ErrManifestMarshalFailed is returned when a manifest document cannot be encoded.
	ErrManifestMarshalFailed = zerr.New("failed to marshal manifest")

	// ErrManifestWriteFailed is returned when a manifest file cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrCacheReadFailed is returned when the parse cache cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read parse cache")

	// ErrCacheWriteFailed is returned when the parse cache cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write parse cache")

	// ErrCacheCorrupt is returned when a cache artifact fails to decode or verify.
	ErrCacheCorrupt = zerr.New("parse cache is corrupt")

	// ErrFailedToGetRoot is returned when the explicit module root cannot be made absolute.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of module root")
)
