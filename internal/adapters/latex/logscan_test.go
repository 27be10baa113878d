package latex_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/texwatch/internal/adapters/latex"
)

func TestExtractError(t *testing.T) {
	tests := []struct {
		name    string
		log     string
		want    string
		wantHit bool
	}{
		{
			name:    "single marker",
			log:     "This is pdfTeX\n! Undefined control sequence.\nl.5 \\foo",
			want:    "Undefined control sequence.",
			wantHit: true,
		},
		{
			name:    "first of several markers",
			log:     "! Missing $ inserted.\n<inserted text>\n! Emergency stop.\n",
			want:    "Missing $ inserted.",
			wantHit: true,
		},
		{
			name: "empty log",
			log:  "",
		},
		{
			name: "no marker",
			log:  "This is pdfTeX, Version 3.141592653\nOutput written on main.pdf (1 page).\n",
		},
		{
			name: "marker not at line start",
			log:  "Package hyperref Warning: Token not allowed! (see below)\n",
		},
		{
			name:    "whitespace-only marker skipped",
			log:     "!   \n! LaTeX Error: File `foo.sty' not found.\n",
			want:    "LaTeX Error: File `foo.sty' not found.",
			wantHit: true,
		},
		{
			name:    "crlf line endings",
			log:     "(./main.tex\r\n! Emergency stop.\r\n<*> main.tex\r\n",
			want:    "Emergency stop.",
			wantHit: true,
		},
		{
			name:    "marker on last line without newline",
			log:     "prelude\n!  Paragraph ended before \\textbf was complete.  ",
			want:    "Paragraph ended before \\textbf was complete.",
			wantHit: true,
		},
		{
			name:    "marker after an oversized line",
			log:     strings.Repeat("x", 2<<20) + "\n! Undefined control sequence.\n",
			want:    "Undefined control sequence.",
			wantHit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := latex.ExtractError(tt.log)

			assert.Equal(t, tt.wantHit, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
