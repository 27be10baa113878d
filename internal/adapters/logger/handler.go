package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/texwatch/internal/ui/output"
	"go.trai.ch/texwatch/internal/ui/style"
)

const timestampLayout = "15:04:05"

// PrettyHandler is a slog.Handler producing one colored line per record.
// Warnings and errors are prefixed with their status icon.
type PrettyHandler struct {
	out        *termenv.Output
	level      slog.Leveler
	attrs      []string
	group      string
	timestamps bool
}

// NewPrettyHandler creates a PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// WithTimestamps returns a copy of h that prefixes each line with the record time.
func (h *PrettyHandler) WithTimestamps() *PrettyHandler {
	c := *h
	c.timestamps = true
	return &c
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	if h.timestamps && !r.Time.IsZero() {
		b.WriteString(r.Time.Format(timestampLayout))
		b.WriteByte(' ')
	}

	color := style.Slate
	switch {
	case r.Level >= slog.LevelError:
		b.WriteString(style.Cross + " ")
		color = style.Red
	case r.Level >= slog.LevelWarn:
		b.WriteString(style.Warning + " ")
		color = style.Yellow
	}
	b.WriteString(r.Message)

	for _, attr := range h.attrs {
		b.WriteByte(' ')
		b.WriteString(attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		b.WriteByte(' ')
		b.WriteString(formatAttr(h.group, attr))
		return true
	})

	styled := h.out.String(b.String()).Foreground(termenv.RGBColor(string(color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a handler that appends attrs to every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = make([]string, len(h.attrs), len(h.attrs)+len(attrs))
	copy(c.attrs, h.attrs)
	for _, attr := range attrs {
		c.attrs = append(c.attrs, formatAttr(h.group, attr))
	}
	return &c
}

// WithGroup returns a handler that qualifies later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.group = qualify(h.group, name)
	return &c
}

// formatAttr renders attr as key=value. Group values are flattened
// into dotted keys.
func formatAttr(group string, attr slog.Attr) string {
	key := qualify(group, attr.Key)
	if attr.Value.Kind() != slog.KindGroup {
		return key + "=" + attr.Value.String()
	}

	members := attr.Value.Group()
	parts := make([]string, 0, len(members))
	for _, member := range members {
		parts = append(parts, formatAttr(key, member))
	}
	return strings.Join(parts, " ")
}

func qualify(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}
