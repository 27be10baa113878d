// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"
)

// Command describes one external process invocation.
type Command struct {
	// Name is the program to run, resolved on PATH unless absolute.
	Name string
	// Args are passed to the program verbatim.
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Env holds extra "KEY=VALUE" entries layered over the allow-listed system environment.
	Env []string
}

// Executor defines the interface for running external programs.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd to completion, streaming its combined output to out.
	//
	// It returns an error wrapping domain.ErrEngineNotFound when cmd.Name cannot be
	// resolved, an *exec.ExitError in the chain when the program exits non-zero,
	// and any other error when the process could not be started.
	Execute(ctx context.Context, cmd Command, out io.Writer) error
}
