// Package ports defines the core interfaces for the application.
package ports

import "context"

// CommandRunner runs external programs such as the compiler and linker.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type CommandRunner interface {
	// Run executes argv[0] with the remaining arguments in dir.
	// A non-zero exit is returned as an error carrying exit_code metadata.
	Run(ctx context.Context, dir string, argv []string) error
}
