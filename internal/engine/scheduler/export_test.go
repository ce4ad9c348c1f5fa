package scheduler

import (
	"time"

	"go.trai.ch/forge/internal/core/ports"
)

// NewSchedulerWith creates a Scheduler with a fixed CPU count and poll interval.
// This is exported for testing purposes only.
func NewSchedulerWith(renderer ports.Renderer, logger ports.Logger, cpus int, interval time.Duration) *Scheduler {
	s := NewScheduler(renderer, logger)
	s.cpus = cpus
	s.interval = interval
	return s
}
