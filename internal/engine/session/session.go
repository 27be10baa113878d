// Package session runs the watch, compile and present loop for one document.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.trai.ch/texwatch/internal/adapters/watcher" //nolint:depguard // Debouncing is shared with the watcher adapter
	"go.trai.ch/texwatch/internal/core/domain"
	"go.trai.ch/texwatch/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Options configures one preview session.
type Options struct {
	Target domain.WatchTarget
	Engine domain.Engine
	Open   domain.OpenPolicy
	// Debounce is the minimum time between accepted triggers.
	// Zero selects watcher.DefaultDebounceInterval.
	Debounce time.Duration
}

// targetLocks holds one mutex per source path, shared by every session in
// the process.
var targetLocks sync.Map

func lockFor(target domain.WatchTarget) *sync.Mutex {
	mu, _ := targetLocks.LoadOrStore(target.Source, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Session drives compilations of a single document in response to changes.
//
// A session compiles once on start, then once per accepted change. Changes
// that arrive while the engine is running are queued and compiled in order
// afterwards. At most one compilation of a given source runs at a time.
type Session struct {
	compiler ports.Compiler
	watchers ports.WatcherFactory
	opener   ports.Opener
	logger   ports.Logger
	now      func() time.Time
}

// New creates a Session.
func New(compiler ports.Compiler, watchers ports.WatcherFactory, opener ports.Opener, logger ports.Logger) *Session {
	return &Session{
		compiler: compiler,
		watchers: watchers,
		opener:   opener,
		logger:   logger,
		now:      time.Now,
	}
}

// Compile runs one compilation of opts.Target under the target's lock and
// publishes it to display. A successful artifact is opened when opts.Open
// is OpenAlways.
func (s *Session) Compile(ctx context.Context, opts Options, display ports.Display) domain.CompileResult {
	mu := lockFor(opts.Target)
	mu.Lock()
	defer mu.Unlock()

	display.OnCompileStart(opts.Engine, s.now())
	result := s.compiler.Compile(ctx, opts.Target, opts.Engine)
	display.OnCompileResult(result)

	if result.Success && opts.Open == domain.OpenAlways && result.Artifact != "" {
		if err := s.opener.Open(result.Artifact); err != nil {
			s.logger.Error(err)
		}
	}
	return result
}

// Run starts display, compiles once and then recompiles on every accepted
// change until ctx is cancelled, the display exits or the watch fails.
// Only a watch failure is returned as an error. The display is stopped on
// every path.
func (s *Session) Run(ctx context.Context, opts Options, display ports.Display) (err error) {
	if err := display.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = display.Stop()
		err = errors.Join(err, display.Wait())
	}()

	w, err := s.watchers()
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.Start(runCtx, opts.Target.Source); err != nil {
		return err
	}

	s.Compile(ctx, opts, display)

	debouncer := watcher.NewChangeDebouncer(opts.Target.Source, opts.Debounce)
	queue := newTriggerQueue()

	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		defer cancel()
		for ev := range w.Events() {
			if debouncer.Accept(ev) {
				queue.push()
			}
		}
		return w.Err()
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				if n := queue.drop(); n > 0 {
					s.logger.Info(fmt.Sprintf("dropped %d queued compilation(s) on exit", n))
				}
				return nil
			case <-queue.ready:
			}

			for gctx.Err() == nil && queue.take() {
				s.Compile(ctx, opts, display)
			}
		}
	})

	g.Go(func() error {
		select {
		case <-display.Done():
		case <-gctx.Done():
		}
		cancel()
		return w.Stop()
	})

	return g.Wait()
}
