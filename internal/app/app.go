// Package app implements the application layer for texwatch.
package app

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/texwatch/internal/adapters/detector"
	"go.trai.ch/texwatch/internal/adapters/telemetry"
	"go.trai.ch/texwatch/internal/core/ports"
	"go.trai.ch/texwatch/internal/engine/session"
)

// logSink is implemented by loggers whose destination and format can change
// at runtime.
type logSink interface {
	SetOutput(w io.Writer)
	SetJSON(enable bool)
	SetTimestamps(enable bool)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	session      *session.Session
	scaffolder   ports.Scaffolder
	logger       ports.Logger
	tracer       *telemetry.OTelTracer

	stdout     io.Writer
	stderr     io.Writer
	detect     func() detector.OutputMode
	teaOptions []tea.ProgramOption
	otelOnce   sync.Once
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sess *session.Session,
	scaffolder ports.Scaffolder,
	log ports.Logger,
	tracer *telemetry.OTelTracer,
) *App {
	return &App{
		configLoader: loader,
		session:      sess,
		scaffolder:   scaffolder,
		logger:       log,
		tracer:       tracer,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		detect:       detector.DetectEnvironment,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput replaces the streams compile logs and status lines go to.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithEnvironment replaces terminal detection for the auto output mode.
func (a *App) WithEnvironment(detect func() detector.OutputMode) *App {
	a.detect = detect
	return a
}

// SetJSONLogs switches the logger to JSON lines when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if sink, ok := a.logger.(logSink); ok {
		sink.SetJSON(enable)
	}
}

// setupOTel registers a tracer provider that reports finished compilations to
// the logger. The provider is global, so this happens once per App.
func (a *App) setupOTel() {
	a.otelOnce.Do(func() {
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSpanProcessor(telemetry.NewBridge(a.logger)),
		)
		otel.SetTracerProvider(tp)
	})
}
