// Package style holds the colors, icons and status styles shared by every
// texwatch surface: the live view, the linear output and the logger.
package style

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Status names the state of the most recent compilation.
type Status int

const (
	// StatusIdle means nothing has been compiled yet.
	StatusIdle Status = iota
	// StatusCompiling means the engine is running.
	StatusCompiling
	// StatusSuccess means the last compilation produced an artifact.
	StatusSuccess
	// StatusFailure means the last compilation failed.
	StatusFailure
)

// Icon returns the glyph shown next to a status.
func (s Status) Icon() string {
	switch s {
	case StatusCompiling:
		return Dot
	case StatusSuccess:
		return Check
	case StatusFailure:
		return Cross
	default:
		return Circle
	}
}

// Color returns the foreground color of a status.
func (s Status) Color() lipgloss.Color {
	switch s {
	case StatusCompiling:
		return Iris
	case StatusSuccess:
		return Green
	case StatusFailure:
		return Red
	default:
		return Slate
	}
}

// Label returns the short word shown next to the icon.
func (s Status) Label() string {
	switch s {
	case StatusCompiling:
		return "compiling"
	case StatusSuccess:
		return "ok"
	case StatusFailure:
		return "failed"
	default:
		return "waiting"
	}
}

// FormatDuration rounds d for display: milliseconds below one second,
// hundredths of a second above.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(10 * time.Millisecond).String()
}
