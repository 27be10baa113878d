package app

import (
	"context"
	"errors"

	"go.trai.ch/texwatch/internal/adapters/linear"
	"go.trai.ch/texwatch/internal/core/domain"
	"go.trai.ch/zerr"
)

// Build compiles the document once, prints the log and opens the artifact on
// success. A failed compilation returns an error wrapping ErrBuildFailed.
func (a *App) Build(ctx context.Context, opts TargetOptions) error {
	_, sessOpts, err := a.prepare(opts)
	if err != nil {
		return err
	}

	display := linear.NewRenderer(a.stdout, a.stderr, "")

	a.setupOTel()
	a.tracer.WithDisplay(display)
	defer a.tracer.WithDisplay(nil)

	result := a.session.Compile(ctx, sessOpts, display)
	if !result.Success {
		return errors.Join(zerr.With(zerr.Wrap(domain.ErrBuildFailed, sessOpts.Target.Name()), "engine", sessOpts.Engine.String()), result.Err)
	}
	return nil
}
