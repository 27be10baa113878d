// Package opener shows produced artifacts with the platform's default viewer.
package opener

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/browser"
	"go.trai.ch/texwatch/internal/core/domain"
	"go.trai.ch/zerr"
)

var quietOnce sync.Once

// Opener implements ports.Opener with xdg-open, open or the Windows shell,
// as chosen by github.com/pkg/browser.
type Opener struct {
	launch func(path string) error
}

// New creates an Opener. The launcher's own output is discarded so it
// cannot corrupt the terminal display.
func New() *Opener {
	quietOnce.Do(func() {
		browser.Stdout = io.Discard
		browser.Stderr = io.Discard
	})
	return &Opener{launch: browser.OpenFile}
}

// Open shows the file at path.
func (o *Opener) Open(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Join(zerr.With(zerr.Wrap(domain.ErrFailedToResolvePath, "artifact"), "path", path), err)
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return zerr.With(zerr.Wrap(domain.ErrArtifactNotFound, "open"), "path", abs)
	case err != nil:
		return errors.Join(zerr.With(zerr.Wrap(domain.ErrOpenFailed, "stat"), "path", abs), err)
	case info.IsDir():
		return zerr.With(zerr.Wrap(domain.ErrArtifactNotFound, "artifact is a directory"), "path", abs)
	}

	if err := o.launch(abs); err != nil {
		return errors.Join(zerr.With(zerr.Wrap(domain.ErrOpenFailed, "launch viewer"), "path", abs), err)
	}
	return nil
}
