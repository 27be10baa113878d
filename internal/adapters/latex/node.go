package latex

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/texwatch/internal/adapters/shell"
	"go.trai.ch/texwatch/internal/adapters/telemetry"
	"go.trai.ch/texwatch/internal/core/ports"
)

// NodeID is the unique identifier for the compiler Graft node.
const NodeID graft.ID = "adapter.compiler"

func init() {
	graft.Register(graft.Node[ports.Compiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, telemetry.TracerNodeID},
		Run: func(ctx context.Context) (ports.Compiler, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[*telemetry.OTelTracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(executor, tracer), nil
		},
	})
}
