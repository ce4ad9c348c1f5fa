package deps

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/core/ports"
)

// NodeID is the unique identifier for the dependency analyzer factory Graft node.
const NodeID graft.ID = "engine.deps"

func init() {
	graft.Register(graft.Node[ports.AnalyzerFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.AnalyzerFactory, error) {
			return NewFactory(), nil
		},
	})
}
