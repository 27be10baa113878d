package ports

import (
	"context"
	"time"

	"go.trai.ch/texwatch/internal/core/domain"
)

// Display is the live view of a preview session.
// It decouples the session from presentation, allowing the same results to
// drive either the interactive TUI or plain linear output.
//
// OnCompileStart and OnCompileResult may be called from any goroutine.
//
//go:generate mockgen -source=display.go -destination=mocks/mock_display.go -package=mocks
type Display interface {
	// Start initializes the display and begins its lifecycle.
	// For asynchronous displays (like the TUI), this launches background goroutines.
	Start(ctx context.Context) error

	// Stop asks the display to shut down.
	Stop() error

	// Wait blocks until the display has fully terminated.
	Wait() error

	// Done is closed once the display has exited, either because the user
	// asked to quit or because Stop was called.
	Done() <-chan struct{}

	// OnCompileStart is called when a compilation of the watched file begins.
	OnCompileStart(engine domain.Engine, at time.Time)

	// OnCompileOutput receives a chunk of the running engine's transcript.
	// data may hold partial lines and ANSI sequences.
	OnCompileOutput(data []byte)

	// OnCompileResult replaces the shown log with result.
	OnCompileResult(result domain.CompileResult)
}
