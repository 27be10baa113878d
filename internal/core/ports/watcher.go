package ports

import (
	"context"
	"iter"
	"time"
)

// ChangeEvent is a raw notification that a path was written or recreated.
type ChangeEvent struct {
	// Path is the absolute path reported by the file system.
	Path string
	// Timestamp is when the notification was received.
	Timestamp time.Time
}

// Watcher defines the interface for watching one source file for changes.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start subscribes to changes of the file at path.
	// It returns an error if the subscription cannot be established.
	Start(ctx context.Context, path string) error
	// Stop unsubscribes and releases all resources.
	Stop() error
	// Events returns an iterator of change events. It ends when the watcher
	// stops, the context passed to Start is done, or the subscription breaks.
	Events() iter.Seq[ChangeEvent]
	// Err reports why the event stream ended early, or nil.
	Err() error
}

// WatcherFactory creates a fresh Watcher for each preview session.
type WatcherFactory func() (Watcher, error)
