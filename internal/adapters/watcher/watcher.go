package watcher

import (
	"context"
	"errors"
	"iter"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/texwatch/internal/core/domain"
	"go.trai.ch/texwatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// errDirectoryRemoved is reported when the directory holding the watched file disappears.
var errDirectoryRemoved = errors.New("watched directory was removed")

// Watcher watches a single file using fsnotify.
//
// The parent directory is watched rather than the file itself so that editors
// saving through a temporary file and rename keep being observed.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan ports.ChangeEvent
	now       func() time.Time
	dir       string
	file      string
	stopOnce  sync.Once

	mu  sync.Mutex
	err error
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Join(domain.ErrWatchSubscriptionFailed, err)
	}
	return &Watcher{
		fsWatcher: w,
		events:    make(chan ports.ChangeEvent, eventChannelBuffer),
		now:       time.Now,
	}, nil
}

// Start subscribes to changes of the file at path.
// A symlinked path is followed, so the directory holding the real file is watched.
func (w *Watcher) Start(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Join(zerr.Wrap(domain.ErrFailedToResolvePath, path), err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	w.file = abs
	w.dir = filepath.Dir(abs)

	if err := w.fsWatcher.Add(w.dir); err != nil {
		return errors.Join(zerr.With(zerr.Wrap(domain.ErrWatchSubscriptionFailed, "failed to watch directory"), "dir", w.dir), err)
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		err = w.fsWatcher.Close()
	})
	return err
}

// Events returns an iterator of change events.
func (w *Watcher) Events() iter.Seq[ports.ChangeEvent] {
	return func(yield func(ports.ChangeEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// Err reports the error that ended the event stream, if any.
func (w *Watcher) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

func (w *Watcher) fail(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err == nil {
		w.err = errors.Join(domain.ErrWatchSubscriptionFailed, err)
	}
}

// processEvents converts raw fsnotify events into ports.ChangeEvent until the
// context is done, the watcher is closed or the subscription breaks.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				if filepath.Clean(event.Name) == w.dir {
					w.fail(zerr.Wrap(errDirectoryRemoved, w.dir))
					return
				}
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if !w.emit(ctx, event.Name) {
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				// Changes may have been lost; report one for the watched file.
				if !w.emit(ctx, w.file) {
					return
				}
				continue
			}
			w.fail(err)
			return
		}
	}
}

func (w *Watcher) emit(ctx context.Context, path string) bool {
	select {
	case w.events <- ports.ChangeEvent{Path: path, Timestamp: w.now()}:
		return true
	case <-ctx.Done():
		return false
	}
}
