// Package detector selects how the preview is displayed.
package detector

import (
	"os"
	"strings"

	"go.trai.ch/texwatch/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode is the display used for a preview session.
type OutputMode int

const (
	// ModeAuto picks a mode from the environment.
	ModeAuto OutputMode = iota
	// ModeTUI is the full-screen interactive display.
	ModeTUI
	// ModeLinear prints plain status lines, suitable for pipes and CI logs.
	ModeLinear
)

// String returns the flag spelling of m.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// ParseMode parses an --output flag value. "ci" is an alias for linear.
func ParseMode(flag string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "", "auto":
		return ModeAuto, nil
	case "tui":
		return ModeTUI, nil
	case "linear", "ci":
		return ModeLinear, nil
	default:
		return ModeAuto, zerr.With(zerr.Wrap(domain.ErrUnknownOutputMode, "invalid --output value"), "value", flag)
	}
}

// DetectEnvironment inspects stdout and the process environment.
func DetectEnvironment() OutputMode {
	return Detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv)
}

// Detect returns ModeLinear when stdout is not a terminal, when CI is set
// to a true value, or when TERM is "dumb". Otherwise it returns ModeTUI.
func Detect(isTTY bool, getenv func(string) string) OutputMode {
	if !isTTY || getenv("TERM") == "dumb" {
		return ModeLinear
	}
	switch strings.ToLower(getenv("CI")) {
	case "true", "1":
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode returns requested unless it is ModeAuto, in which case the
// detected mode wins.
func ResolveMode(detected, requested OutputMode) OutputMode {
	if requested == ModeAuto {
		return detected
	}
	return requested
}
