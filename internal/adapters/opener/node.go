package opener

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/texwatch/internal/core/ports"
)

// NodeID is the unique identifier for the opener Graft node.
const NodeID graft.ID = "adapter.opener"

func init() {
	graft.Register(graft.Node[ports.Opener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Opener, error) {
			return New(), nil
		},
	})
}
