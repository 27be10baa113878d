package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/texwatch/internal/core/ports"
)

// WatcherNodeID is the unique identifier for the file watcher Graft node.
const WatcherNodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.WatcherFactory]{
		ID:        WatcherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WatcherFactory, error) {
			return func() (ports.Watcher, error) {
				return NewWatcher()
			}, nil
		},
	})
}
