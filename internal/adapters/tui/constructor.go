// Package tui provides the full-screen live preview display.
package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/texwatch/internal/ui/output"
	"go.trai.ch/texwatch/internal/ui/style"
)

// NewModel creates a Model for the document named title. w is the terminal
// the program draws on and decides the color profile.
func NewModel(w io.Writer, title string) Model {
	if w == nil {
		w = os.Stderr
	}
	lipgloss.SetColorProfile(output.New(w).Profile)

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = statusStyle(style.StatusCompiling)

	return Model{
		Title:   title,
		Status:  style.StatusIdle,
		Term:    NewVterm(),
		spinner: s,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}
