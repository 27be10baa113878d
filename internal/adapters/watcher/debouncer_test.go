package watcher_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/texwatch/internal/adapters/watcher"
	"go.trai.ch/texwatch/internal/core/ports"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("\\documentclass{article}\n"), 0o600))
}

func TestChangeDebouncer_Timings(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "main.tex")
	writeFile(t, target)

	d := watcher.NewChangeDebouncer(target, watcher.DefaultDebounceInterval)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	offsets := []time.Duration{0, 200 * time.Millisecond, 500 * time.Millisecond, 1300 * time.Millisecond}
	var accepted []time.Duration
	for _, off := range offsets {
		if d.Accept(ports.ChangeEvent{Path: target, Timestamp: base.Add(off)}) {
			accepted = append(accepted, off)
		}
	}

	assert.Equal(t, []time.Duration{0, 1300 * time.Millisecond}, accepted)
}

func TestChangeDebouncer_ExactIntervalAccepted(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "main.tex")
	writeFile(t, target)

	d := watcher.NewChangeDebouncer(target, time.Second)
	base := time.Now()

	require.True(t, d.Accept(ports.ChangeEvent{Path: target, Timestamp: base}))
	assert.True(t, d.Accept(ports.ChangeEvent{Path: target, Timestamp: base.Add(time.Second)}))
}

func TestChangeDebouncer_DropsOtherPaths(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "main.tex")
	other := filepath.Join(dir, "main.aux")
	writeFile(t, target)
	writeFile(t, other)

	d := watcher.NewChangeDebouncer(target, time.Second)
	base := time.Now()

	assert.False(t, d.Accept(ports.ChangeEvent{Path: other, Timestamp: base}))
	assert.False(t, d.Accept(ports.ChangeEvent{Path: other, Timestamp: base.Add(5 * time.Second)}))
	// Dropped events do not start a window.
	assert.True(t, d.Accept(ports.ChangeEvent{Path: target, Timestamp: base.Add(5 * time.Second)}))
}

func TestChangeDebouncer_ResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "main.tex")
	writeFile(t, target)

	link := filepath.Join(t.TempDir(), "linked.tex")
	require.NoError(t, os.Symlink(target, link))

	t.Chdir(dir)

	d := watcher.NewChangeDebouncer("main.tex", time.Second)
	base := time.Now()

	assert.True(t, d.Accept(ports.ChangeEvent{Path: link, Timestamp: base}))
	assert.False(t, d.Accept(ports.ChangeEvent{Path: filepath.Join(dir, ".", "main.tex"), Timestamp: base}))
	assert.True(t, d.Accept(ports.ChangeEvent{Path: "./main.tex", Timestamp: base.Add(2 * time.Second)}))
}

func TestChangeDebouncer_MissingFileStillMatches(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "main.tex")
	writeFile(t, target)

	d := watcher.NewChangeDebouncer(target, time.Second)
	require.NoError(t, os.Remove(target))

	assert.True(t, d.Accept(ports.ChangeEvent{Path: target, Timestamp: time.Now()}))
}

func TestChangeDebouncer_DefaultInterval(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "main.tex")
	writeFile(t, target)

	d := watcher.NewChangeDebouncer(target, 0)
	base := time.Now()

	require.True(t, d.Accept(ports.ChangeEvent{Path: target, Timestamp: base}))
	assert.False(t, d.Accept(ports.ChangeEvent{Path: target, Timestamp: base.Add(999 * time.Millisecond)}))
}

func TestChangeDebouncer_ConcurrentAccept(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "main.tex")
	writeFile(t, target)

	d := watcher.NewChangeDebouncer(target, time.Hour)
	at := time.Now()

	var mu sync.Mutex
	accepted := 0
	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			if d.Accept(ports.ChangeEvent{Path: target, Timestamp: at}) {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		})
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
}
