package session_test

import (
	"context"
	"iter"
	"sync"
	"time"

	"go.trai.ch/texwatch/internal/core/domain"
	"go.trai.ch/texwatch/internal/core/ports"
)

// fakeWatcher delivers events pushed by the test.
type fakeWatcher struct {
	events chan ports.ChangeEvent

	mu       sync.Mutex
	err      error
	started  string
	stopOnce sync.Once
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{events: make(chan ports.ChangeEvent, 16)}
}

func (w *fakeWatcher) factory() ports.WatcherFactory {
	return func() (ports.Watcher, error) { return w, nil }
}

func (w *fakeWatcher) Start(_ context.Context, path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.started = path
	return nil
}

func (w *fakeWatcher) Stop() error {
	w.stopOnce.Do(func() { close(w.events) })
	return nil
}

// breakWith ends the event stream with a fatal error.
func (w *fakeWatcher) breakWith(err error) {
	w.mu.Lock()
	w.err = err
	w.mu.Unlock()
	_ = w.Stop()
}

func (w *fakeWatcher) Events() iter.Seq[ports.ChangeEvent] {
	return func(yield func(ports.ChangeEvent) bool) {
		for ev := range w.events {
			if !yield(ev) {
				return
			}
		}
	}
}

func (w *fakeWatcher) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

func (w *fakeWatcher) send(path string, at time.Time) {
	w.events <- ports.ChangeEvent{Path: path, Timestamp: at}
}

// recordingDisplay records every call and lets the test end the session
// the way a quit key would.
type recordingDisplay struct {
	results chan domain.CompileResult
	done    chan struct{}
	quit    sync.Once

	mu      sync.Mutex
	starts  int
	stopped bool
	events  []string
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{
		results: make(chan domain.CompileResult, 64),
		done:    make(chan struct{}),
	}
}

func (d *recordingDisplay) Start(context.Context) error { return nil }

func (d *recordingDisplay) Stop() error {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()
	d.Quit()
	return nil
}

func (d *recordingDisplay) Wait() error {
	<-d.done
	return nil
}

func (d *recordingDisplay) Done() <-chan struct{} { return d.done }

func (d *recordingDisplay) Quit() { d.quit.Do(func() { close(d.done) }) }

func (d *recordingDisplay) OnCompileStart(domain.Engine, time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.starts++
	d.events = append(d.events, "start")
}

func (d *recordingDisplay) OnCompileOutput([]byte) {}

func (d *recordingDisplay) OnCompileResult(result domain.CompileResult) {
	d.mu.Lock()
	d.events = append(d.events, "result")
	d.mu.Unlock()
	d.results <- result
}

func (d *recordingDisplay) calls() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.events...)
}

func (d *recordingDisplay) wasStopped() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stopped
}

// gatedCompiler blocks every compilation until the test releases it.
type gatedCompiler struct {
	started chan int
	release chan struct{}

	mu      sync.Mutex
	count   int
	active  int
	overlap bool
}

func newGatedCompiler() *gatedCompiler {
	return &gatedCompiler{
		started: make(chan int, 64),
		release: make(chan struct{}, 64),
	}
}

func (c *gatedCompiler) Compile(_ context.Context, target domain.WatchTarget, _ domain.Engine) domain.CompileResult {
	c.mu.Lock()
	c.count++
	n := c.count
	c.active++
	if c.active > 1 {
		c.overlap = true
	}
	c.mu.Unlock()

	c.started <- n
	<-c.release

	c.mu.Lock()
	c.active--
	c.mu.Unlock()
	return domain.CompileResult{Success: true, Log: "Compilation successful.", Artifact: target.ArtifactPath()}
}

func (c *gatedCompiler) compiles() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}
