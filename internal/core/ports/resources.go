package ports

import "context"

// ResourceEmbedder packages platform resources into an object artifact.
//
//go:generate go run go.uber.org/mock/mockgen -source=resources.go -destination=mocks/mock_resources.go -package=mocks
type ResourceEmbedder interface {
	// Embed compiles icon into an object inside objDir and returns its path.
	// It returns an empty path when the platform has no resource step or no
	// icon is configured, removing any stale resource object.
	Embed(ctx context.Context, icon, objDir string) (string, error)
}

// LibraryResolver finds and copies runtime libraries.
type LibraryResolver interface {
	// Resolve returns the dynamic libraries in dirs whose base name matches one of names.
	Resolve(dirs, names []string) ([]string, error)

	// Copy places every library in dest, creating it when needed.
	Copy(libs []string, dest string) error
}
