package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/texwatch/internal/adapters/detector"
	"go.trai.ch/texwatch/internal/adapters/linear"
	"go.trai.ch/texwatch/internal/adapters/tui"
	"go.trai.ch/texwatch/internal/core/domain"
	"go.trai.ch/texwatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// WatchOptions configures Watch.
type WatchOptions struct {
	TargetOptions
	// OutputMode is auto, tui or linear.
	OutputMode string
}

// Watch compiles the document and recompiles it on every save until ctx is
// cancelled or the user quits the display.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	requested, err := detector.ParseMode(opts.OutputMode)
	if err != nil {
		return err
	}

	cfg, sessOpts, err := a.prepare(opts.TargetOptions)
	if err != nil {
		return err
	}

	mode := detector.ResolveMode(a.detect(), requested)

	var display ports.Display
	if mode == detector.ModeTUI {
		restore, err := a.redirectLogs(cfg.Root)
		if err != nil {
			return err
		}
		defer restore()

		model := tui.NewModel(a.stderr, sessOpts.Target.Name())
		teaOpts := append([]tea.ProgramOption{
			tea.WithContext(ctx),
			tea.WithOutput(a.stderr),
			tea.WithAltScreen(),
		}, a.teaOptions...)
		display = tui.NewRenderer(&model, teaOpts...)
	} else {
		display = linear.NewRenderer(a.stdout, a.stderr, sessOpts.Target.Name())
	}

	a.setupOTel()
	a.tracer.WithDisplay(display)
	defer a.tracer.WithDisplay(nil)

	return a.session.Run(ctx, sessOpts, display)
}

// redirectLogs sends log output to the project's debug log while the TUI
// owns the terminal. The returned func restores stderr.
func (a *App) redirectLogs(root string) (func(), error) {
	sink, ok := a.logger.(logSink)
	if !ok {
		return func() {}, nil
	}

	path := domain.DebugLogPath(root)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, errors.Join(zerr.With(zerr.Wrap(domain.ErrDebugLogFailed, "create state directory"), "path", filepath.Dir(path)), err)
	}

	//nolint:gosec // path is below the project root
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, domain.PrivateFilePerm)
	if err != nil {
		return nil, errors.Join(zerr.With(zerr.Wrap(domain.ErrDebugLogFailed, "open"), "path", path), err)
	}

	sink.SetOutput(f)
	sink.SetTimestamps(true)

	return func() {
		sink.SetOutput(nil)
		sink.SetTimestamps(false)
		_ = f.Close()
	}, nil
}
