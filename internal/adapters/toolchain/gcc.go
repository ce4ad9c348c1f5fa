// Package toolchain drives a GCC-compatible compiler and linker.
package toolchain

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// GCC implements ports.Toolchain and ports.Linker for gcc, g++, clang and
// anything else accepting the same command line.
type GCC struct {
	runner ports.CommandRunner
}

// NewGCC creates a new GCC.
func NewGCC(runner ports.CommandRunner) *GCC {
	return &GCC{runner: runner}
}

// CompileArgs returns the argument vector for req.
func CompileArgs(req ports.CompileRequest) []string {
	args := make([]string, 0, len(req.Flags)+6)
	args = append(args, req.Compiler)
	if req.Std != "" {
		args = append(args, "-std="+req.Std)
	}
	args = append(args, req.Flags...)
	return append(args, "-c", req.Source.Path, "-o", req.Object)
}

// LinkArgs returns the argument vector for req.
func LinkArgs(req ports.LinkRequest) []string {
	args := make([]string, 0, len(req.Flags)+len(req.Objects)+len(req.LibFlags)+3)
	args = append(args, req.Linker)
	args = append(args, req.Flags...)
	args = append(args, req.Objects...)
	args = append(args, req.LibFlags...)
	return append(args, "-o", req.Output)
}

// Compile runs the compiler for one source in req.Dir.
func (g *GCC) Compile(ctx context.Context, req ports.CompileRequest) (string, error) {
	if err := g.runner.Run(ctx, req.Dir, CompileArgs(req)); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCompileFailed.Error()), "source", req.Source.Path)
	}
	return req.Object, nil
}

// Link runs the linker over every object in req.Dir.
func (g *GCC) Link(ctx context.Context, req ports.LinkRequest) (string, error) {
	if err := g.runner.Run(ctx, req.Dir, LinkArgs(req)); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrLinkFailed.Error()), "output", req.Output)
	}
	return req.Output, nil
}
