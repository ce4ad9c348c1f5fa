package progrock

import (
	"sync"

	"github.com/vito/progrock"
)

// Step is the last known status of a recorded vertex.
type Step struct {
	Name   string
	Done   bool
	Failed bool
	Cached bool
}

// Journal is a progrock.Writer that keeps the latest status of every
// vertex and forwards updates to the next writer.
type Journal struct {
	next progrock.Writer

	mu    sync.Mutex
	order []string
	steps map[string]*Step
}

// NewJournal creates a Journal forwarding to next, which may be nil.
func NewJournal(next progrock.Writer) *Journal {
	return &Journal{
		next:  next,
		steps: make(map[string]*Step),
	}
}

// WriteStatus records the vertexes carried by update.
func (j *Journal) WriteStatus(update *progrock.StatusUpdate) error {
	j.mu.Lock()
	for _, v := range update.Vertexes {
		step, ok := j.steps[v.Id]
		if !ok {
			step = &Step{}
			j.steps[v.Id] = step
			j.order = append(j.order, v.Id)
		}
		step.Name = v.Name
		step.Done = v.Completed != nil
		step.Failed = v.Error != nil
		step.Cached = v.Cached
	}
	j.mu.Unlock()

	if j.next == nil {
		return nil
	}
	return j.next.WriteStatus(update)
}

// Steps returns a snapshot in first-seen order.
func (j *Journal) Steps() []Step {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]Step, 0, len(j.order))
	for _, id := range j.order {
		out = append(out, *j.steps[id])
	}
	return out
}

// Close closes the next writer.
func (j *Journal) Close() error {
	if j.next == nil {
		return nil
	}
	return j.next.Close()
}
