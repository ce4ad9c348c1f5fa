// Package scheduler runs build phases on a bounded worker pool.
package scheduler

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/tevino/abool/v2"
	"go.trai.ch/forge/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// DefaultInterval is how often progress is polled.
const DefaultInterval = 10 * time.Millisecond

// Mode selects how many workers a pool uses.
type Mode int

const (
	// ModeSequential runs units one at a time in order.
	ModeSequential Mode = iota
	// ModeParallel runs up to one unit per CPU.
	ModeParallel
)

// Unit performs item i of a phase.
type Unit func(ctx context.Context, phase *Phase, i int) error

// Summary describes a finished phase.
type Summary struct {
	Completed int
	Total     int
	Elapsed   time.Duration
}

// Scheduler creates pools that report to a shared renderer.
type Scheduler struct {
	renderer ports.Renderer
	logger   ports.Logger
	interval time.Duration
	cpus     int
}

// NewScheduler creates a new Scheduler.
func NewScheduler(renderer ports.Renderer, logger ports.Logger) *Scheduler {
	return &Scheduler{
		renderer: renderer,
		logger:   logger,
		interval: DefaultInterval,
		cpus:     runtime.NumCPU(),
	}
}

// Workers returns the pool size for mode.
func (s *Scheduler) Workers(mode Mode) int {
	if mode == ModeParallel {
		return s.cpus
	}
	return 1
}

// Pool returns a pool sized for mode.
func (s *Scheduler) Pool(mode Mode) *Pool {
	return &Pool{sched: s, mode: mode, workers: s.Workers(mode)}
}

// Pool runs the units of a phase.
type Pool struct {
	sched   *Scheduler
	mode    Mode
	workers int
}

// Workers returns the number of concurrent units the pool runs.
func (p *Pool) Workers() int {
	return p.workers
}

// Run executes unit for every index in [0, total) and blocks until all
// started units have returned and the final progress has been reported.
//
// After the first failure no further units are started; the units already
// running finish and the first error is returned.
func (p *Pool) Run(ctx context.Context, name string, total int, unit Unit) (Summary, error) {
	phase := newPhase(name, total)
	rep := newReporter(phase, p.sched.renderer, p.sched.interval)

	start := time.Now()
	p.sched.renderer.OnPhaseStart(name, total)
	go rep.loop()

	var err error
	if p.mode == ModeSequential {
		err = runSequential(ctx, phase, total, unit)
	} else {
		err = runParallel(ctx, phase, total, p.workers, unit)
	}

	close(phase.done)
	<-rep.stopped

	completed, _ := phase.counters.Snapshot()
	summary := Summary{Completed: completed, Total: total, Elapsed: time.Since(start)}
	p.sched.renderer.OnPhaseEnd(name, completed, total, summary.Elapsed)

	if err == nil && completed != total {
		p.sched.logger.Warn(fmt.Sprintf("%s: %d of %d units reported completion", name, completed, total))
	}

	return summary, err
}

func runSequential(ctx context.Context, phase *Phase, total int, unit Unit) error {
	for i := range total {
		if err := unit(ctx, phase, i); err != nil {
			return err
		}
		phase.counters.Inc()
	}
	return nil
}

func runParallel(ctx context.Context, phase *Phase, total, workers int, unit Unit) error {
	var g errgroup.Group
	g.SetLimit(workers)

	aborted := abool.New()
	for i := range total {
		if aborted.IsSet() {
			break
		}
		g.Go(func() error {
			if aborted.IsSet() {
				return nil
			}
			if err := unit(ctx, phase, i); err != nil {
				aborted.Set()
				return err
			}
			phase.counters.Inc()
			return nil
		})
	}

	return g.Wait()
}
