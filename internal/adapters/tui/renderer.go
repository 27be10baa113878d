package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/texwatch/internal/core/domain"
)

// Renderer runs the Model in a Bubble Tea program and implements
// ports.Display. Compile events reach the model through Program.Send.
type Renderer struct {
	program *tea.Program
	model   *Model
	done    chan struct{}
	err     error
}

// NewRenderer creates a Renderer for model.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		model:   model,
		done:    make(chan struct{}),
	}
}

// Start launches the program in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		defer close(r.done)
		_, err := r.program.Run()
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			err = nil
		}
		r.err = err
	}()
	return nil
}

// Stop asks the program to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the program has exited and restored the terminal.
func (r *Renderer) Wait() error {
	<-r.done
	return r.err
}

// Done is closed when the program exits, including when the user quits.
func (r *Renderer) Done() <-chan struct{} {
	return r.done
}

// OnCompileStart forwards the start of a compilation.
func (r *Renderer) OnCompileStart(engine domain.Engine, at time.Time) {
	r.program.Send(MsgCompileStart{Engine: engine, At: at})
}

// OnCompileOutput forwards a chunk of live engine output.
func (r *Renderer) OnCompileOutput(data []byte) {
	r.program.Send(MsgCompileOutput{Data: data})
}

// OnCompileResult forwards a finished compilation.
func (r *Renderer) OnCompileResult(result domain.CompileResult) {
	r.program.Send(MsgCompileResult{Result: result})
}
