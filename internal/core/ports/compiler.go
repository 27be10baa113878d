package ports

import (
	"context"

	"go.trai.ch/texwatch/internal/core/domain"
)

// Compiler turns a source document into an artifact.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile runs the engine against target and blocks until it finishes.
	// Failures are reported in the result, never as a panic or error return.
	Compile(ctx context.Context, target domain.WatchTarget, engine domain.Engine) domain.CompileResult
}
