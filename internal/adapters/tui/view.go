package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/texwatch/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	if m.Width == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header(),
		logStyle.Render(m.Term.View()),
		m.statusBar(),
	)
}

func (m *Model) header() string {
	title := titleStyle
	if m.Status == style.StatusFailure {
		title = failureTitleStyle
	}
	return title.Render("texwatch") + headerStyle.Render(" Watching "+m.Title)
}

func (m *Model) statusBar() string {
	left := m.statusText()
	right := m.help.ShortHelpView(m.keys.ShortHelp())

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return statusBarStyle.Width(m.Width).Render(left)
	}
	return statusBarStyle.Width(m.Width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m *Model) statusText() string {
	icon := m.Status.Icon()
	if m.Status == style.StatusCompiling {
		icon = m.spinner.View()
	}
	st := statusStyle(m.Status)

	var detail string
	switch m.Status {
	case style.StatusCompiling:
		detail = fmt.Sprintf("with %s", m.Engine)
	case style.StatusSuccess:
		detail = "in " + style.FormatDuration(m.Last.Duration)
	case style.StatusFailure:
		if m.Last.Excerpt != "" {
			detail = excerptStyle.Render(m.Last.Excerpt)
		} else {
			detail = "after " + style.FormatDuration(m.Last.Duration)
		}
	default:
		detail = "for the first compilation"
	}

	return fmt.Sprintf("%s %s %s", st.Render(icon), st.Render(m.Status.Label()), detail)
}
