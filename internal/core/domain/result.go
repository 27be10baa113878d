package domain

import "time"

// CompileResult is the outcome of one two-pass compilation.
// Log is always self-contained and human readable.
type CompileResult struct {
	Success bool
	Log     string
	// Excerpt is the first error pulled from the engine log, if any.
	Excerpt string
	// Err classifies a failure: ErrEngineNotFound or ErrCompilationFailed.
	Err error
	// Artifact is the produced document; set only on success.
	Artifact string
	Duration time.Duration
}
