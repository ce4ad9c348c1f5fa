package ports

import "go.trai.ch/forge/internal/core/domain"

// StateStore persists the build state between runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StateStore interface {
	// Load reads the state at path for the given tool version.
	// A missing record yields an empty state with StateMissing. A record written
	// by another version, or one that cannot be decoded, yields an empty state
	// with StateIncompatible. Only I/O failures are returned as errors.
	Load(path, toolVersion string) (*domain.BuildState, domain.LoadStatus, error)

	// Save atomically replaces the record at path.
	Save(path string, state *domain.BuildState) error

	// Remove deletes the record at path. A missing record is not an error.
	Remove(path string) error
}

// ArtifactStore lists and removes object artifacts.
type ArtifactStore interface {
	// List returns the absolute paths of every object artifact in dir.
	// A missing directory yields an empty list.
	List(dir string) ([]string, error)

	// Remove deletes an artifact. Removing a missing artifact is not an error.
	Remove(path string) error
}
