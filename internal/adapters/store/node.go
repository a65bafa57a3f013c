package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pantry/internal/core/ports"
)

// NodeID is the unique identifier for the store opener Graft node.
const NodeID graft.ID = "adapter.store"

func init() {
	graft.Register(graft.Node[ports.StoreOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StoreOpener, error) {
			return NewOpener(), nil
		},
	})
}
