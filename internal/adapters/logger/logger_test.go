package logger_test

import (
	"bytes"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/texwatch/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Info("compile main finished in 1.2s")
	lg.Warn("unknown template, using article")

	assert.Equal(t, "compile main finished in 1.2s\n! unknown template, using article\n", buf.String())
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newTestLogger(t)

	inner := zerr.With(zerr.New("engine not found"), "command", "lualatex")
	lg.Error(zerr.Wrap(inner, "build failed"))

	want := "✗ Error: build failed\n\n  Caused by:\n    → engine not found\n      command: lualatex\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(zerr.With(zerr.Wrap(errors.New("no such file"), "failed to read config file"), "path", "texwatch.yaml"))

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, "failed to read config file")
	assert.NotContains(t, out, "✗")

	buf.Reset()
	lg.SetJSON(false)
	lg.Error(errors.New("plain"))
	assert.Equal(t, "✗ Error: plain\n", buf.String())
}

func TestLogger_SetTimestamps(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetTimestamps(true)

	lg.Info("watching main.tex")

	assert.Regexp(t, regexp.MustCompile(`^\d{2}:\d{2}:\d{2} watching main\.tex\n$`), buf.String())
}

func TestLogger_SetOutputNil(t *testing.T) {
	lg, _ := newTestLogger(t)
	require.NotPanics(t, func() { lg.SetOutput(nil) })
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)

	var wg sync.WaitGroup
	wg.Go(func() { lg.Info("info") })
	wg.Go(func() { lg.Warn("warn") })
	wg.Go(func() { lg.Error(errors.New("error")) })
	wg.Go(func() { lg.SetJSON(true) })
	wg.Go(func() { lg.SetTimestamps(true) })
	wg.Go(func() { lg.SetOutput(&bytes.Buffer{}) })
	wg.Wait()
}
