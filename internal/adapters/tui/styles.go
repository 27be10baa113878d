package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/texwatch/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Red).
				Foreground(style.White)

	headerStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	logStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	statusBarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(style.Slate)

	excerptStyle = lipgloss.NewStyle().
			Foreground(style.Red).
			Bold(true)
)

// statusStyle returns the foreground style of a compile status.
func statusStyle(s style.Status) lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(s.Color())
	if s == style.StatusCompiling {
		st = st.Bold(true)
	}
	return st
}
