package domain

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// WatchTarget identifies the one source file being compiled and the directory
// its build artifacts are written to. Both paths are absolute.
type WatchTarget struct {
	Source    string
	OutputDir string
}

// NewWatchTarget validates source and prepares outputDir.
// The source must exist and be a regular file; outputDir is created if missing.
func NewWatchTarget(source, outputDir string) (WatchTarget, error) {
	absSource, err := filepath.Abs(source)
	if err != nil {
		return WatchTarget{}, errors.Join(zerr.Wrap(ErrFailedToResolvePath, source), err)
	}
	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		return WatchTarget{}, errors.Join(zerr.Wrap(ErrFailedToResolvePath, outputDir), err)
	}

	info, err := os.Stat(absSource)
	if err != nil {
		return WatchTarget{}, zerr.Wrap(ErrSourceNotFound, absSource)
	}
	if info.IsDir() {
		return WatchTarget{}, zerr.Wrap(ErrSourceIsDirectory, absSource)
	}

	if err := os.MkdirAll(absOut, DirPerm); err != nil {
		return WatchTarget{}, errors.Join(zerr.Wrap(ErrOutputDirCreateFailed, absOut), err)
	}

	return WatchTarget{Source: absSource, OutputDir: absOut}, nil
}

// Name returns the base name of the source file.
func (t WatchTarget) Name() string {
	return filepath.Base(t.Source)
}

// Stem returns the source file name without its extension.
func (t WatchTarget) Stem() string {
	name := t.Name()
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// LogPath returns where the engine writes its sidecar log.
func (t WatchTarget) LogPath() string {
	return filepath.Join(t.OutputDir, t.Stem()+LogExt)
}

// ArtifactPath returns where the engine writes the produced document.
func (t WatchTarget) ArtifactPath() string {
	return filepath.Join(t.OutputDir, t.Stem()+ArtifactExt)
}
