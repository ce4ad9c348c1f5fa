// Package detector decides whether progress output can redraw in place.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how progress is displayed.
type OutputMode int

const (
	// ModeInteractive redraws a single progress line on a terminal.
	ModeInteractive OutputMode = iota
	// ModeLinear prints append-only lines for logs and CI.
	ModeLinear
)

// DetectEnvironment returns the output mode for f.
// It checks if f is a TTY and if CI environment variables are set.
func DetectEnvironment(f *os.File) OutputMode {
	isTTY := f != nil && term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeInteractive
}
