package conversions

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pantry/internal/core/ports"
)

// NodeID is the unique identifier for the conversion source Graft node.
const NodeID graft.ID = "adapter.conversions"

func init() {
	graft.Register(graft.Node[ports.ConversionSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConversionSource, error) {
			return NewFileSource(), nil
		},
	})
}
