package progrock

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

// vertex is one build step. Only the first Complete call counts.
type vertex struct {
	rec  *progrock.VertexRecorder
	once sync.Once
}

func (v *vertex) Stdout() io.Writer {
	return v.rec.Stdout()
}

func (v *vertex) Stderr() io.Writer {
	return v.rec.Stderr()
}

func (v *vertex) Complete(err error) {
	v.once.Do(func() {
		v.rec.Done(err)
	})
}

func (v *vertex) Cached() {
	v.rec.Cached()
}
