package ports

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
)

// CompileRequest describes one compiler invocation.
type CompileRequest struct {
	// Dir is the working directory, normally the project root, against which
	// relative flags resolve.
	Dir      string
	Source   domain.SourceUnit
	Object   string
	Compiler string
	Std      string
	Flags    []string
}

// LinkRequest describes the final link.
type LinkRequest struct {
	// Dir is the working directory for the linker.
	Dir      string
	Linker   string
	Objects  []string
	Flags    []string
	LibFlags []string
	Output   string
}

// Toolchain compiles translation units.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Compile produces req.Object from req.Source and returns the object path.
	// Failures wrap domain.ErrCompileFailed.
	Compile(ctx context.Context, req CompileRequest) (string, error)
}

// Linker links object artifacts into the program.
type Linker interface {
	// Link produces req.Output and returns its path.
	// Failures wrap domain.ErrLinkFailed.
	Link(ctx context.Context, req LinkRequest) (string, error)
}
