package shell

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		sysEnv   []string
		extra    []string
		expected []string
	}{
		{
			name:     "System Only (Allowed)",
			sysEnv:   []string{"USER=test", "PATH=/bin", "HOME=/home/test"},
			expected: []string{"USER=test", "PATH=/bin", "HOME=/home/test"},
		},
		{
			name:     "System Only (Filtered)",
			sysEnv:   []string{"USER=test", "SSH_AUTH_SOCK=/tmp/ssh", "SECRET=key"},
			expected: []string{"USER=test"},
		},
		{
			name:     "TeX Search Paths",
			sysEnv:   []string{"TEXINPUTS=./styles:", "TEXMFHOME=/home/test/texmf", "EDITOR=vi"},
			expected: []string{"TEXINPUTS=./styles:", "TEXMFHOME=/home/test/texmf"},
		},
		{
			name:     "Extra Overrides",
			sysEnv:   []string{"USER=test", "PATH=/bin"},
			extra:    []string{"PATH=/custom/bin", "max_print_line=1000"},
			expected: []string{"USER=test", "PATH=/custom/bin", "max_print_line=1000"},
		},
		{
			name:     "Malformed Entries",
			sysEnv:   []string{"USER"},
			extra:    []string{"NOVALUE"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveEnvironment(tt.sysEnv, tt.extra)

			sort.Strings(got)
			sort.Strings(tt.expected)

			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLookPath_EmptyPATH(t *testing.T) {
	_, err := lookPath("pdflatex", []string{"USER=test"})
	assert.Error(t, err)
}

func TestLookPath_ExecutableNotFound(t *testing.T) {
	_, err := lookPath("nonexistent-command", []string{"PATH=/nonexistent/dir"})
	assert.Error(t, err)
}

func TestLookPath_Found(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xelatex")
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o700))

	got, err := lookPath("xelatex", []string{"PATH=/nonexistent:" + dir})
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestFindExecutable_NonExistent(t *testing.T) {
	assert.Error(t, findExecutable("/nonexistent/file"))
}

func TestFindExecutable_Directory(t *testing.T) {
	assert.ErrorIs(t, findExecutable(t.TempDir()), os.ErrPermission)
}
