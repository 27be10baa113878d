package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/texwatch/internal/core/domain"
	"go.trai.ch/texwatch/internal/ui/style"
)

// Model is the single-pane preview: a header naming the watched file, the
// log pane and a status line.
type Model struct {
	Title     string
	Status    style.Status
	Engine    domain.Engine
	StartedAt time.Time
	Last      *domain.CompileResult
	Term      *Vterm
	Width     int
	Height    int

	spinner spinner.Model
	keys    keyMap
	help    help.Model
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	case MsgCompileStart:
		return m.handleCompileStart(msg)
	case MsgCompileOutput:
		// Output belongs to the running compilation only.
		if m.Status == style.StatusCompiling {
			_, _ = m.Term.Write(msg.Data)
		}
	case MsgCompileResult:
		return m.handleCompileResult(msg)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.Term.ScrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.Term.ScrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.Term.ScrollBy(-m.Term.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.Term.ScrollBy(m.Term.Height)
	case key.Matches(msg, m.keys.Top):
		m.Term.ScrollTop()
	case key.Matches(msg, m.keys.Bottom):
		m.Term.ScrollBottom()
	}
	return m, nil
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.help.Width = msg.Width

	chrome := lipgloss.Height(m.header()) + lipgloss.Height(m.statusBar())
	m.Term.SetWidth(msg.Width - logStyle.GetHorizontalFrameSize())
	m.Term.SetHeight(msg.Height - chrome)
	return m, nil
}

func (m *Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if m.Status != style.StatusCompiling {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m *Model) handleCompileStart(msg MsgCompileStart) (tea.Model, tea.Cmd) {
	wasCompiling := m.Status == style.StatusCompiling

	m.Status = style.StatusCompiling
	m.Engine = msg.Engine
	m.StartedAt = msg.At
	m.Term.Reset()

	if wasCompiling {
		return m, nil
	}
	return m, m.spinner.Tick
}

func (m *Model) handleCompileResult(msg MsgCompileResult) (tea.Model, tea.Cmd) {
	result := msg.Result
	m.Last = &result
	if result.Success {
		m.Status = style.StatusSuccess
	} else {
		m.Status = style.StatusFailure
	}

	m.Term.Reset()
	m.Term.WriteText(result.Log)
	return m, nil
}
