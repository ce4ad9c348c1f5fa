package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the project configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config")

	// ErrConfigParseFailed is returned when the project configuration file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config")

	// ErrConfigInvalid is returned when a configuration value is missing or malformed.
	ErrConfigInvalid = zerr.New("invalid config")

	// ErrMissingSourceDirectory is returned when a configured source root does not exist.
	ErrMissingSourceDirectory = zerr.New("source directory does not exist")

	// ErrCompileFailed is returned when the compiler exits unsuccessfully for a unit.
	ErrCompileFailed = zerr.New("compilation failed")

	// ErrLinkFailed is returned when the linker exits unsuccessfully.
	ErrLinkFailed = zerr.New("linking failed")

	// ErrResourceEmbeddingFailed is returned when the platform resource object cannot be produced.
	ErrResourceEmbeddingFailed = zerr.New("failed to embed resources")

	// ErrStateReadFailed is returned when the persisted build state exists but cannot be read.
	ErrStateReadFailed = zerr.New("failed to read build state")

	// ErrStateWriteFailed is returned when the build state cannot be persisted.
	ErrStateWriteFailed = zerr.New("failed to write build state")

	// ErrLibraryCopyFailed is returned when a runtime library cannot be copied next to the binary.
	ErrLibraryCopyFailed = zerr.New("failed to copy library")

	// ErrLibraryScanFailed is returned when a library directory cannot be listed.
	ErrLibraryScanFailed = zerr.New("failed to scan library directory")

	// ErrOutputDirFailed is returned when the object or binary directory cannot be prepared.
	ErrOutputDirFailed = zerr.New("failed to prepare output directory")

	// ErrArtifactCleanupFailed is returned when a stale object artifact cannot be deleted.
	ErrArtifactCleanupFailed = zerr.New("failed to remove object artifact")

	// ErrDependencyScanFailed is returned when a source file cannot be scanned for includes.
	ErrDependencyScanFailed = zerr.New("failed to scan includes")

	// ErrSourceScanFailed is returned when walking a source root fails.
	ErrSourceScanFailed = zerr.New("failed to scan source directory")

	// ErrWatcherFailed is returned when the file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to start file watcher")
)
