package scaffold

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/texwatch/internal/adapters/config"
	"go.trai.ch/texwatch/internal/core/ports"
)

// NodeID is the unique identifier for the scaffolder Graft node.
const NodeID graft.ID = "adapter.scaffold"

func init() {
	graft.Register(graft.Node[ports.Scaffolder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Scaffolder, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader)
		},
	})
}
