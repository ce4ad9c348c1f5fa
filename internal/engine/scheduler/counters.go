package scheduler

import "sync"

// Counters track the progress of one phase.
type Counters struct {
	mu        sync.Mutex
	total     int
	completed int
}

// NewCounters returns counters for a phase of total units.
func NewCounters(total int) *Counters {
	return &Counters{total: total}
}

// Inc records one completed unit and returns the new count.
func (c *Counters) Inc() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.completed++
	return c.completed
}

// Snapshot returns the completed and total counts.
func (c *Counters) Snapshot() (completed, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.completed, c.total
}
