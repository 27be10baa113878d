package session

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/texwatch/internal/adapters/latex"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/texwatch/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/texwatch/internal/adapters/opener"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/texwatch/internal/adapters/watcher" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/texwatch/internal/core/ports"
)

// NodeID is the unique identifier for the session Graft node.
const NodeID graft.ID = "engine.session"

func init() {
	graft.Register(graft.Node[*Session]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			latex.NodeID,
			watcher.WatcherNodeID,
			opener.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Session, error) {
			compiler, err := graft.Dep[ports.Compiler](ctx)
			if err != nil {
				return nil, err
			}

			watchers, err := graft.Dep[ports.WatcherFactory](ctx)
			if err != nil {
				return nil, err
			}

			op, err := graft.Dep[ports.Opener](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(compiler, watchers, op, log), nil
		},
	})
}
