// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/forge/internal/core/ports"
)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
type Recorder struct {
	rec     *progrock.Recorder
	journal *Journal
	seq     atomic.Uint64
}

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	journal := NewJournal(w)
	return &Recorder{
		rec:     progrock.NewRecorder(journal),
		journal: journal,
	}
}

// Record starts recording a new vertex. Every call yields a distinct
// vertex, so steps repeated across rebuilds do not collapse into one.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(fmt.Sprintf("%s#%d", name, r.seq.Add(1)))
	v := &vertex{rec: r.rec.Vertex(d, name)}
	return ports.ContextWithVertex(ctx, v), v
}

// Steps returns the steps recorded so far.
func (r *Recorder) Steps() []Step {
	return r.journal.Steps()
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.journal.Close()
}
