// Package latex drives the external LaTeX engines and reads their logs.
package latex

import "strings"

// ErrorMarker starts a fatal diagnostic line in TeX logs.
const ErrorMarker = "!"

// ExtractError returns the first fatal diagnostic of logText.
//
// A diagnostic is a line starting with "!" that carries text after the marker;
// the text is returned trimmed. Markers elsewhere on a line do not count.
// It reports false when the log holds no such line.
func ExtractError(logText string) (string, bool) {
	for line := range strings.Lines(logText) {
		rest, ok := strings.CutPrefix(line, ErrorMarker)
		if !ok {
			continue
		}
		if msg := strings.TrimSpace(rest); msg != "" {
			return msg, true
		}
	}

	return "", false
}
