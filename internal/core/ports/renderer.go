package ports

import "time"

// RenderOptions tune how phase progress is displayed.
type RenderOptions struct {
	// Verbose enables per-unit log lines.
	Verbose bool
	// Percent shows progress as a percentage rather than a count.
	Percent bool
}

// Renderer displays scheduler phases.
// Calls for one phase come from a single goroutine.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Configure applies options for subsequent phases.
	Configure(opts RenderOptions)
	// OnPhaseStart is called before any unit of the phase runs.
	OnPhaseStart(phase string, total int)
	// OnUnitLog is called for each message a unit logs, seq counting from 1.
	OnUnitLog(phase string, seq, total int, msg string)
	// OnProgress is called when the completed count changes.
	OnProgress(phase string, completed, total int)
	// OnPhaseEnd is called once every unit has returned.
	OnPhaseEnd(phase string, completed, total int, elapsed time.Duration)
}
