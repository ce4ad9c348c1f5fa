package libs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/core/ports"
)

// NodeID is the unique identifier for the library resolver Graft node.
const NodeID graft.ID = "adapter.libs"

func init() {
	graft.Register(graft.Node[ports.LibraryResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LibraryResolver, error) {
			return NewResolver(), nil
		},
	})
}
