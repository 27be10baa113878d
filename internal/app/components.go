package app

import (
	"context"

	"go.trai.ch/texwatch/internal/adapters/telemetry"
	"go.trai.ch/texwatch/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer *telemetry.OTelTracer
}

// Close flushes buffered compile output.
func (c *Components) Close(ctx context.Context) error {
	if c.Tracer == nil {
		return nil
	}
	return c.Tracer.Shutdown(ctx)
}
