package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/texwatch/internal/adapters/detector"
	"go.trai.ch/texwatch/internal/core/domain"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		isTTY bool
		env   map[string]string
		want  detector.OutputMode
	}{
		{name: "terminal", isTTY: true, want: detector.ModeTUI},
		{name: "pipe", isTTY: false, want: detector.ModeLinear},
		{name: "CI=true", isTTY: true, env: map[string]string{"CI": "true"}, want: detector.ModeLinear},
		{name: "CI=1", isTTY: true, env: map[string]string{"CI": "1"}, want: detector.ModeLinear},
		{name: "CI=false", isTTY: true, env: map[string]string{"CI": "false"}, want: detector.ModeTUI},
		{name: "dumb terminal", isTTY: true, env: map[string]string{"TERM": "dumb"}, want: detector.ModeLinear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }
			assert.Equal(t, tt.want, detector.Detect(tt.isTTY, getenv))
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		flag string
		want detector.OutputMode
	}{
		{"", detector.ModeAuto},
		{"auto", detector.ModeAuto},
		{"TUI", detector.ModeTUI},
		{"linear", detector.ModeLinear},
		{"ci", detector.ModeLinear},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := detector.ParseMode(tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := detector.ParseMode("fancy")
	require.ErrorIs(t, err, domain.ErrUnknownOutputMode)
}

func TestResolveMode(t *testing.T) {
	assert.Equal(t, detector.ModeTUI, detector.ResolveMode(detector.ModeTUI, detector.ModeAuto))
	assert.Equal(t, detector.ModeLinear, detector.ResolveMode(detector.ModeLinear, detector.ModeAuto))
	assert.Equal(t, detector.ModeLinear, detector.ResolveMode(detector.ModeTUI, detector.ModeLinear))
	assert.Equal(t, detector.ModeTUI, detector.ResolveMode(detector.ModeLinear, detector.ModeTUI))
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "auto", detector.ModeAuto.String())
	assert.Equal(t, "tui", detector.ModeTUI.String())
	assert.Equal(t, "linear", detector.ModeLinear.String())
}
