package linear

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/detector"
	"go.trai.ch/forge/internal/core/ports"
)

// NodeID is the unique identifier for the renderer Graft node.
const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Renderer, error) {
			interactive := detector.DetectEnvironment(os.Stderr) == detector.ModeInteractive
			return NewRenderer(os.Stderr, interactive), nil
		},
	})
}
