// Package linear provides a line-oriented display for pipes and CI logs.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/texwatch/internal/core/domain"
	"go.trai.ch/texwatch/internal/ui/output"
	"go.trai.ch/texwatch/internal/ui/style"
)

const clockLayout = "15:04:05"

// Renderer implements ports.Display by printing status lines to stderr and
// each compile log to stdout. Live engine output is not shown.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output
	title  string

	mu       sync.Mutex
	done     chan struct{}
	stopOnce sync.Once
}

// NewRenderer creates a Renderer. title names the watched document; an
// empty title suppresses the banner.
func NewRenderer(stdout, stderr io.Writer, title string) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: output.NewWithProfile(stderr, output.ColorProfileANSI),
		title:  title,
		done:   make(chan struct{}),
	}
}

// Start prints the banner.
func (r *Renderer) Start(_ context.Context) error {
	if r.title == "" {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	banner := r.output.String(fmt.Sprintf("Watching %s. Press Ctrl+C to stop.", r.title)).Faint()
	_, _ = fmt.Fprintln(r.stderr, banner.String())
	return nil
}

// Stop releases Wait and closes Done.
func (r *Renderer) Stop() error {
	r.stopOnce.Do(func() { close(r.done) })
	return nil
}

// Wait blocks until Stop is called.
func (r *Renderer) Wait() error {
	<-r.done
	return nil
}

// Done is closed once the renderer has stopped. The linear renderer has no
// quit key, so only Stop closes it.
func (r *Renderer) Done() <-chan struct{} {
	return r.done
}

// OnCompileStart prints a compiling status line.
func (r *Renderer) OnCompileStart(engine domain.Engine, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.statusLocked(style.StatusCompiling, at, fmt.Sprintf("compiling with '%s'", engine))
}

// OnCompileOutput ignores live engine output; the full log arrives with the result.
func (r *Renderer) OnCompileOutput(_ []byte) {}

// OnCompileResult prints the result log followed by a status line.
func (r *Renderer) OnCompileResult(result domain.CompileResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if result.Log != "" {
		_, _ = io.WriteString(r.stdout, strings.TrimRight(result.Log, "\n")+"\n")
	}

	elapsed := style.FormatDuration(result.Duration)
	if result.Success {
		r.statusLocked(style.StatusSuccess, time.Now(), "compiled in "+elapsed)
		return
	}

	msg := "compilation failed after " + elapsed
	if result.Excerpt != "" {
		msg += ": " + result.Excerpt
	}
	r.statusLocked(style.StatusFailure, time.Now(), msg)
}

// statusLocked prints one status line. Must be called with r.mu held.
func (r *Renderer) statusLocked(status style.Status, at time.Time, msg string) {
	icon := r.output.String(status.Icon()).Foreground(termenv.RGBColor(string(status.Color())))
	_, _ = fmt.Fprintf(r.stderr, "[%s] %s %s\n", at.Format(clockLayout), icon, msg)
}
