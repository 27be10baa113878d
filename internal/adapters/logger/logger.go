// Package logger implements the ports.Logger adapter on top of log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/texwatch/internal/core/ports"
)

const (
	errorPrefix = "Error: "
	errorIndent = "       "
	causeHeader = "  Caused by:"
	causeArrow  = "    → "
	causeIndent = "      "
)

// chainError is an error that reports its own message and metadata
// separately from the rest of the chain, as zerr.Error does.
type chainError interface {
	Message() string
	Metadata() map[string]any
}

// errorEntry is one link of an error chain prepared for display.
type errorEntry struct {
	Message  string
	Metadata map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger     *slog.Logger
	mu         sync.RWMutex
	jsonMode   bool
	timestamps bool
	output     io.Writer
}

// New creates a Logger writing pretty output to stderr.
func New() ports.Logger {
	l := &Logger{output: os.Stderr}
	l.rebuild()
	return l
}

// SetOutput redirects log output to w, keeping the current format.
// A nil writer restores stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty output.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetTimestamps toggles the time prefix of pretty output.
func (l *Logger) SetTimestamps(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.timestamps = enable
	l.rebuild()
}

// rebuild swaps the slog handler. The caller must hold l.mu.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.jsonMode {
		l.logger = slog.New(slog.NewJSONHandler(l.output, opts))
		return
	}
	handler := NewPrettyHandler(l.output, opts)
	if l.timestamps {
		handler = handler.WithTimestamps()
	}
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err with its cause chain. Nil errors are ignored.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// collectErrorEntries walks the chain of err. Links that expose their own
// message contribute one entry each; the first plain error ends the walk
// with its full text.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	for current := err; current != nil; {
		ce, ok := current.(chainError)
		if !ok {
			entries = append(entries, errorEntry{Message: current.Error()})
			break
		}
		entries = append(entries, errorEntry{Message: ce.Message(), Metadata: ce.Metadata()})
		current = errors.Unwrap(current)
	}
	return entries
}

// formatErrorEntries renders entries as a headline followed by a
// "Caused by" list. Metadata keys are printed in sorted order.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string
	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		first, indent := errorPrefix, errorIndent
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", causeHeader)
			}
			first, indent = causeArrow, causeIndent
		}

		lines = append(lines, first+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}
	return strings.Join(lines, "\n")
}
