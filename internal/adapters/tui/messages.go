package tui

import (
	"time"

	"go.trai.ch/texwatch/internal/core/domain"
)

// MsgCompileStart announces that the engine was launched.
type MsgCompileStart struct {
	Engine domain.Engine
	At     time.Time
}

// MsgCompileOutput carries a chunk of the live engine transcript.
type MsgCompileOutput struct {
	Data []byte
}

// MsgCompileResult carries a finished compilation.
type MsgCompileResult struct {
	Result domain.CompileResult
}
