package scheduler

import (
	"time"

	"go.trai.ch/forge/internal/core/ports"
)

// Phase is the shared state of one scheduler phase.
type Phase struct {
	name     string
	counters *Counters
	queue    *LogQueue
	done     chan struct{}
}

func newPhase(name string, total int) *Phase {
	return &Phase{
		name:     name,
		counters: NewCounters(total),
		queue:    NewLogQueue(),
		done:     make(chan struct{}),
	}
}

// Name returns the phase name.
func (p *Phase) Name() string {
	return p.name
}

// Log queues a message for display.
func (p *Phase) Log(msg string) {
	p.queue.Push(msg)
}

// reporter polls a phase and forwards its progress to a renderer.
type reporter struct {
	phase    *Phase
	renderer ports.Renderer
	interval time.Duration
	seq      int
	last     int
	stopped  chan struct{}
}

func newReporter(phase *Phase, renderer ports.Renderer, interval time.Duration) *reporter {
	return &reporter{
		phase:    phase,
		renderer: renderer,
		interval: interval,
		last:     -1,
		stopped:  make(chan struct{}),
	}
}

// loop runs until the phase is done, then flushes once more.
func (r *reporter) loop() {
	defer close(r.stopped)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.phase.done:
			r.flush()
			return
		case <-ticker.C:
			r.flush()
		}
	}
}

func (r *reporter) flush() {
	completed, total := r.phase.counters.Snapshot()

	for _, msg := range r.phase.queue.Drain() {
		r.seq++
		r.renderer.OnUnitLog(r.phase.name, r.seq, total, msg)
	}

	if completed != r.last {
		r.last = completed
		r.renderer.OnProgress(r.phase.name, completed, total)
	}
}
