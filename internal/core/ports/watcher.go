package ports

import "context"

// Watcher reports file system changes under a set of roots.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching roots recursively. Nothing at or below an
	// excluded path is watched or reported.
	Start(ctx context.Context, roots, exclude []string) error
	// Events returns debounced batches of changed paths.
	Events() <-chan []string
	// Close stops watching.
	Close() error
}
