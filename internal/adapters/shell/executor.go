// Package shell runs external programs in a pseudo-terminal.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/texwatch/internal/core/domain"
	"go.trai.ch/texwatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec and pty.
type Executor struct {
	environ func() []string
}

// NewExecutor creates a new Executor that inherits the allow-listed process environment.
func NewExecutor() *Executor {
	return &Executor{environ: os.Environ}
}

// Execute runs cmd in a PTY and waits for it to complete.
// The PTY merges stdout and stderr, so out receives the whole transcript.
func (e *Executor) Execute(ctx context.Context, cmd ports.Command, out io.Writer) error {
	if cmd.Name == "" {
		return zerr.Wrap(domain.ErrEngineNotFound, "empty command")
	}

	env := resolveEnvironment(e.environ(), cmd.Env)

	executable, err := resolveExecutable(cmd.Name, env)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrEngineNotFound, err.Error()), "command", cmd.Name)
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // engine is validated by the caller
	c.Args[0] = cmd.Name
	c.Dir = cmd.Dir
	c.Env = env

	ptmx, err := pty.Start(c)
	if err != nil {
		return zerr.Wrap(err, "failed to start pty")
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		// Reading the master returns EIO once the child side closes.
		_, _ = io.Copy(out, ptmx)
	}()

	err = c.Wait()
	<-ioDone

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}

	return nil
}

// allowListedEnvVars are the system environment variables inherited by the engine.
// TeX search paths are passed through so local class and style files keep resolving.
var allowListedEnvVars = map[string]struct{}{
	"HOME":              {},
	"TERM":              {},
	"USER":              {},
	"PATH":              {},
	"LANG":              {},
	"LC_ALL":            {},
	"TMPDIR":            {},
	"TEXINPUTS":         {},
	"BIBINPUTS":         {},
	"BSTINPUTS":         {},
	"TEXMFHOME":         {},
	"TEXMFVAR":          {},
	"TEXMFCONFIG":       {},
	"SOURCE_DATE_EPOCH": {},
}

// resolveEnvironment filters sysEnv to the allow-list and layers extra on top.
func resolveEnvironment(sysEnv, extra []string) []string {
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, allowed := allowListedEnvVars[k]; allowed {
			envMap[k] = v
		}
	}

	for _, entry := range extra {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

func resolveExecutable(name string, env []string) (string, error) {
	if filepath.IsAbs(name) || strings.ContainsRune(name, filepath.Separator) {
		if err := findExecutable(name); err != nil {
			return "", err
		}
		return name, nil
	}
	return lookPath(name, env)
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
