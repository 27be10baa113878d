package telemetry

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/texwatch/internal/core/ports"
)

// OutputBufferSize determines the size of the async transcript channel.
const OutputBufferSize = 4096

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
// Output written to its spans is batched and forwarded to the attached display.
//
// Output of a span reaches the display before End returns, so it is always
// ordered before whatever the caller publishes next.
type OTelTracer struct {
	tracer  trace.Tracer
	display ports.Display
	outChan chan outputChunk
	mu      sync.RWMutex
	done    chan struct{}

	// sendMu guards sends on outChan against Shutdown closing it.
	sendMu sync.RWMutex
	closed bool
}

// outputChunk is either engine output or, when flushed is set, a marker that
// is closed once everything queued before it has been forwarded.
type outputChunk struct {
	data    []byte
	flushed chan struct{}
}

// NewOTelTracer creates a new OTelTracer with the given instrumentation name.
func NewOTelTracer(name string) *OTelTracer {
	t := &OTelTracer{
		tracer:  otel.Tracer(name),
		outChan: make(chan outputChunk, OutputBufferSize),
		done:    make(chan struct{}),
	}
	go t.runLoop()
	return t
}

func (t *OTelTracer) runLoop() {
	defer close(t.done)
	for chunk := range t.outChan {
		if chunk.flushed != nil {
			close(chunk.flushed)
			continue
		}

		t.mu.RLock()
		d := t.display
		t.mu.RUnlock()

		if d != nil {
			d.OnCompileOutput(chunk.data)
		}
	}
}

// enqueue hands data to the forwarder, dropping it when the buffer is full so
// the engine never blocks on the UI.
func (t *OTelTracer) enqueue(data []byte) {
	t.sendMu.RLock()
	defer t.sendMu.RUnlock()
	if t.closed {
		return
	}
	select {
	case t.outChan <- outputChunk{data: data}:
	default:
	}
}

// drain blocks until all output queued so far has been forwarded.
func (t *OTelTracer) drain() {
	flushed := make(chan struct{})

	t.sendMu.RLock()
	if t.closed {
		t.sendMu.RUnlock()
		return
	}
	t.outChan <- outputChunk{flushed: flushed}
	t.sendMu.RUnlock()

	<-flushed
}

// Shutdown stops the background forwarder after draining queued output.
func (t *OTelTracer) Shutdown(ctx context.Context) error {
	t.sendMu.Lock()
	if !t.closed {
		t.closed = true
		close(t.outChan)
	}
	t.sendMu.Unlock()

	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WithDisplay sets the display that receives span output.
func (t *OTelTracer) WithDisplay(d ports.Display) *OTelTracer {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.display = d
	return t
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, span := t.tracer.Start(ctx, name)
	s := &OTelSpan{span: span}
	for k, v := range cfg.Attributes {
		s.SetAttribute(k, v)
	}

	t.mu.RLock()
	d := t.display
	t.mu.RUnlock()

	if d != nil {
		s.tracer = t
		s.batcher = NewBatchProcessor(0, 0, t.enqueue)
	}

	return ctx, s
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type OTelSpan struct {
	span    trace.Span
	batcher *BatchProcessor
	tracer  *OTelTracer
}

// End delivers the span's remaining output to the display and completes the span.
func (s *OTelSpan) End() {
	if s.batcher != nil {
		_ = s.batcher.Close()
		s.tracer.drain()
	}
	s.span.End()
}

// RecordError records an error for the span.
func (s *OTelSpan) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	case fmt.Stringer:
		s.span.SetAttributes(attribute.String(key, v.String()))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}

// Write satisfies io.Writer by forwarding to the batcher, or adding a log event to the span
// when no display is attached.
func (s *OTelSpan) Write(p []byte) (n int, err error) {
	if s.batcher != nil {
		return s.batcher.Write(p)
	}
	s.span.AddEvent("output", trace.WithAttributes(attribute.String("data", string(p))))
	return len(p), nil
}
