package tui_test

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/texwatch/internal/adapters/tui"
	"go.trai.ch/texwatch/internal/core/domain"
	"go.trai.ch/texwatch/internal/ui/style"
)

func newModel(t *testing.T) *tui.Model {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	m := tui.NewModel(io.Discard, "main.tex")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	return &m
}

func update(t *testing.T, m *tui.Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := m.Update(msg)
	require.Same(t, m, next)
	return cmd
}

func TestModel_InitialView(t *testing.T) {
	m := newModel(t)

	assert.Equal(t, style.StatusIdle, m.Status)
	assert.Nil(t, m.Init())

	view := plain(m.View())
	assert.Contains(t, view, "Watching main.tex")
	assert.Contains(t, view, "waiting for the first compilation")
	assert.Contains(t, view, "quit")
}

func TestModel_NotSized(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	m := tui.NewModel(io.Discard, "main.tex")
	assert.Equal(t, "Initializing...", m.View())
}

func TestModel_WindowSize(t *testing.T) {
	m := newModel(t)

	assert.Equal(t, 80, m.Width)
	assert.Equal(t, 12, m.Height)
	assert.Positive(t, m.Term.Height)
	assert.Less(t, m.Term.Height, 12)
	assert.LessOrEqual(t, m.Term.Width, 80)
}

func TestModel_CompileLifecycle(t *testing.T) {
	m := newModel(t)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cmd := update(t, m, tui.MsgCompileStart{Engine: domain.EngineXeLaTeX, At: at})
	assert.NotNil(t, cmd, "spinner tick expected")
	assert.Equal(t, style.StatusCompiling, m.Status)
	assert.Equal(t, domain.EngineXeLaTeX, m.Engine)
	assert.Equal(t, at, m.StartedAt)

	update(t, m, tui.MsgCompileOutput{Data: []byte("This is XeTeX\r\n")})
	view := plain(m.View())
	assert.Contains(t, view, "This is XeTeX")
	assert.Contains(t, view, "compiling with xelatex")

	update(t, m, tui.MsgCompileResult{Result: domain.CompileResult{
		Success:  true,
		Log:      "Compiling main.tex with 'xelatex' into /out...\n--- Pass 1 ---\n--- Pass 2 ---\n\nCompilation successful.",
		Duration: 2 * time.Second,
	}})
	assert.Equal(t, style.StatusSuccess, m.Status)

	view = plain(m.View())
	assert.NotContains(t, view, "This is XeTeX")
	assert.Contains(t, view, "Compilation successful.")
	assert.Contains(t, view, "ok in 2s")
}

func TestModel_FailureShowsExcerpt(t *testing.T) {
	m := newModel(t)

	update(t, m, tui.MsgCompileResult{Result: domain.CompileResult{
		Log:     "Compilation failed.\n\n--- Potential Error ---\nMissing $ inserted.\n-----------------------",
		Excerpt: "Missing $ inserted.",
		Err:     domain.ErrCompilationFailed,
	}})

	assert.Equal(t, style.StatusFailure, m.Status)
	view := plain(m.View())
	assert.Contains(t, view, "failed Missing $ inserted.")
	assert.Contains(t, view, "--- Potential Error ---")
}

func TestModel_FailureWithoutExcerpt(t *testing.T) {
	m := newModel(t)

	update(t, m, tui.MsgCompileResult{Result: domain.CompileResult{
		Log:      "Error: 'lualatex' command not found.",
		Err:      domain.ErrEngineNotFound,
		Duration: 5 * time.Millisecond,
	}})

	assert.Contains(t, plain(m.View()), "failed after 5ms")
}

func TestModel_SpinnerStopsWhenIdle(t *testing.T) {
	m := newModel(t)

	assert.Nil(t, update(t, m, spinner.TickMsg{}))

	update(t, m, tui.MsgCompileStart{Engine: domain.EnginePDFLaTeX, At: time.Now()})
	assert.Nil(t, update(t, m, tui.MsgCompileStart{Engine: domain.EnginePDFLaTeX, At: time.Now()}),
		"a second start must not start another tick loop")
}

func TestModel_QuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(k.String(), func(t *testing.T) {
			m := newModel(t)
			cmd := update(t, m, k)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestModel_ScrollKeys(t *testing.T) {
	m := newModel(t)
	var log strings.Builder
	for i := range 40 {
		log.WriteString("line ")
		log.WriteString(strings.Repeat("x", i%3))
		log.WriteString("\n")
	}
	update(t, m, tui.MsgCompileResult{Result: domain.CompileResult{Success: true, Log: log.String()}})
	bottom := m.Term.Offset
	require.Positive(t, bottom)

	update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, bottom-1, m.Term.Offset)

	update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.Equal(t, 0, m.Term.Offset)

	update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, m.Term.Height, m.Term.Offset)

	update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	assert.Equal(t, bottom, m.Term.Offset)
}

func TestModel_OutputAfterResultIsIgnored(t *testing.T) {
	m := newModel(t)
	update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})

	update(t, m, tui.MsgCompileOutput{Data: []byte("before any compilation\r\n")})
	update(t, m, tui.MsgCompileStart{Engine: domain.EnginePDFLaTeX, At: time.Now()})
	update(t, m, tui.MsgCompileOutput{Data: []byte("This is pdfTeX\r\n")})
	update(t, m, tui.MsgCompileResult{Result: domain.CompileResult{
		Success: true,
		Log:     "--- Pass 1 ---\n--- Pass 2 ---\n\nCompilation successful.",
	}})
	update(t, m, tui.MsgCompileOutput{Data: []byte("Output written on main.pdf\r\n")})

	view := plain(m.Term.View())
	assert.Equal(t, "--- Pass 1 ---\n--- Pass 2 ---\n\nCompilation successful.", strings.TrimSpace(view))
	assert.NotContains(t, view, "Output written")
	assert.NotContains(t, view, "before any compilation")
}
