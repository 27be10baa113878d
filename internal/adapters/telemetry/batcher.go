// Package telemetry traces compilations with OpenTelemetry and streams engine output to the display.
package telemetry

import (
	"bytes"
	"errors"
	"sync"
	"time"
)

const (
	// DefaultSizeLimit is the default buffer size (4KB) if not specified.
	DefaultSizeLimit = 4096
	// DefaultTimeLimit is the default flush delay (50ms) if not specified.
	DefaultTimeLimit = 50 * time.Millisecond
)

// errBatchClosed is returned by Write after Close.
var errBatchClosed = errors.New("batch processor is closed")

// BatchProcessor coalesces small writes into chunks.
// A chunk is handed to onFlush when it reaches sizeLimit bytes, or timeLimit after
// the first byte of the chunk was written, whichever comes first. It is thread-safe.
type BatchProcessor struct {
	sizeLimit int
	timeLimit time.Duration
	onFlush   func([]byte)

	mu     sync.Mutex
	buffer bytes.Buffer
	timer  *time.Timer
	closed bool
}

// NewBatchProcessor returns a new BatchProcessor.
// Non-positive limits fall back to DefaultSizeLimit and DefaultTimeLimit.
// Call Close to deliver the final chunk.
func NewBatchProcessor(sizeLimit int, timeLimit time.Duration, onFlush func([]byte)) *BatchProcessor {
	if sizeLimit <= 0 {
		sizeLimit = DefaultSizeLimit
	}
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}

	return &BatchProcessor{
		sizeLimit: sizeLimit,
		timeLimit: timeLimit,
		onFlush:   onFlush,
	}
}

// Write appends p to the current chunk.
func (bp *BatchProcessor) Write(p []byte) (int, error) {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if bp.closed {
		return 0, errBatchClosed
	}

	wasEmpty := bp.buffer.Len() == 0
	n, _ := bp.buffer.Write(p)

	switch {
	case bp.buffer.Len() >= bp.sizeLimit:
		bp.flushLocked()
	case wasEmpty && n > 0:
		bp.armLocked()
	}

	return n, nil
}

// Flush delivers any buffered data immediately.
func (bp *BatchProcessor) Flush() {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	if bp.closed {
		return
	}
	bp.flushLocked()
}

// Close delivers the final chunk. Later writes fail.
func (bp *BatchProcessor) Close() error {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if bp.closed {
		return nil
	}

	bp.flushLocked()
	bp.closed = true
	return nil
}

func (bp *BatchProcessor) armLocked() {
	if bp.timer == nil {
		bp.timer = time.AfterFunc(bp.timeLimit, bp.Flush)
		return
	}
	bp.timer.Reset(bp.timeLimit)
}

// flushLocked must be called with mu held.
// onFlush runs under the lock so chunks are delivered in order.
func (bp *BatchProcessor) flushLocked() {
	if bp.timer != nil {
		bp.timer.Stop()
	}
	if bp.buffer.Len() == 0 {
		return
	}

	data := bytes.Clone(bp.buffer.Bytes())
	bp.buffer.Reset()

	if bp.onFlush != nil {
		bp.onFlush(data)
	}
}
