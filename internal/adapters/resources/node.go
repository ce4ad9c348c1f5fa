package resources

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/shell"
	"go.trai.ch/forge/internal/core/ports"
)

// NodeID is the unique identifier for the resource embedder Graft node.
const NodeID graft.ID = "adapter.resources"

func init() {
	graft.Register(graft.Node[ports.ResourceEmbedder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.ResourceEmbedder, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewWindres(runner), nil
		},
	})
}
