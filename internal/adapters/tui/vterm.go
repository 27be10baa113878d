package tui

import (
	"bytes"
	"strings"
	"sync"

	"github.com/vito/midterm"
)

// Vterm is a scrollable virtual terminal holding the log pane contents.
// Engine output keeps its ANSI sequences and carriage returns.
type Vterm struct {
	vt      *midterm.Terminal
	Offset  int
	Height  int
	Width   int
	viewBuf *bytes.Buffer
	mu      sync.Mutex
}

// NewVterm creates an empty Vterm.
func NewVterm() *Vterm {
	return &Vterm{
		vt:      midterm.NewAutoResizingTerminal(),
		viewBuf: new(bytes.Buffer),
	}
}

// Write feeds raw terminal output. The view follows new output while it is
// scrolled to the bottom.
func (v *Vterm) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	stickToBottom := v.Offset >= v.maxOffset()

	n, err := v.vt.Write(p)

	if stickToBottom {
		v.Offset = v.maxOffset()
	}

	return n, err
}

// WriteText writes plain text, turning each line feed into CRLF so lines
// start at column zero.
func (v *Vterm) WriteText(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	_, _ = v.Write([]byte(strings.ReplaceAll(s, "\n", "\r\n")))
}

// Reset clears the terminal, keeping its size.
func (v *Vterm) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.vt = midterm.NewAutoResizingTerminal()
	if v.Width > 0 {
		v.vt.ResizeX(v.Width)
	}
	v.Offset = 0
}

// SetHeight updates the view height and keeps the offset valid.
func (v *Vterm) SetHeight(h int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if h < 1 {
		h = 1
	}

	stickToBottom := v.Offset >= v.maxOffset()
	v.Height = h

	if stickToBottom {
		v.Offset = v.maxOffset()
	} else {
		v.clampLocked()
	}
}

// SetWidth updates the terminal width.
func (v *Vterm) SetWidth(w int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if w < 1 {
		w = 1
	}
	v.Width = w
	v.vt.ResizeX(w)
}

// UsedHeight returns the number of lines written so far.
func (v *Vterm) UsedHeight() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.vt.UsedHeight()
}

// ScrollBy moves the view by n lines; negative values scroll up.
func (v *Vterm) ScrollBy(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.Offset += n
	v.clampLocked()
}

// ScrollTop shows the first line.
func (v *Vterm) ScrollTop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Offset = 0
}

// ScrollBottom shows the last page and resumes following new output.
func (v *Vterm) ScrollBottom() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Offset = v.maxOffset()
}

// View renders the visible lines.
func (v *Vterm) View() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.viewBuf.Reset()
	v.clampLocked()

	for i := range v.Height {
		row := v.Offset + i
		if row >= v.vt.UsedHeight() {
			break
		}
		if i > 0 {
			_ = v.viewBuf.WriteByte('\n')
		}
		_ = v.vt.RenderLine(v.viewBuf, row)
	}

	return v.viewBuf.String()
}

func (v *Vterm) clampLocked() {
	if limit := v.maxOffset(); v.Offset > limit {
		v.Offset = limit
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

func (v *Vterm) maxOffset() int {
	return max(v.vt.UsedHeight()-v.Height, 0)
}
