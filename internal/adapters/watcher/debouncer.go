// Package watcher turns file system notifications into compile triggers.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/texwatch/internal/core/ports"
)

// DefaultDebounceInterval is the minimum time between two accepted triggers.
const DefaultDebounceInterval = time.Second

// ChangeDebouncer accepts change events for one file at most once per interval.
//
// The first matching event is accepted immediately; matching events that arrive
// less than interval after the last accepted one are dropped. Events for any
// other path are always dropped.
type ChangeDebouncer struct {
	target   string
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

// NewChangeDebouncer creates a debouncer for the file at target.
// A non-positive interval falls back to DefaultDebounceInterval.
func NewChangeDebouncer(target string, interval time.Duration) *ChangeDebouncer {
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}
	return &ChangeDebouncer{
		target:   resolvePath(target),
		interval: interval,
	}
}

// Accept reports whether ev should trigger a compilation, and records it if so.
func (d *ChangeDebouncer) Accept(ev ports.ChangeEvent) bool {
	if resolvePath(ev.Path) != d.target {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.last.IsZero() && ev.Timestamp.Sub(d.last) < d.interval {
		return false
	}

	d.last = ev.Timestamp
	return true
}

// resolvePath returns the absolute, symlink-free form of path.
// Paths that do not exist (for example mid-way through an atomic save) are only made absolute.
func resolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		return filepath.Join(dir, filepath.Base(abs))
	}
	return abs
}
