package latex

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/texwatch/internal/core/domain"
	"go.trai.ch/texwatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Passes is the number of times the engine runs per compilation.
// The second pass resolves cross-references written by the first.
const Passes = 2

const (
	excerptHeader = "--- Potential Error ---"
	excerptFooter = "-----------------------"
)

// Runner implements ports.Compiler by running a LaTeX engine through an Executor.
type Runner struct {
	executor ports.Executor
	tracer   ports.Tracer
	env      []string
	now      func() time.Time
}

// NewRunner creates a new Runner.
func NewRunner(executor ports.Executor, tracer ports.Tracer) *Runner {
	return &Runner{
		executor: executor,
		tracer:   tracer,
		now:      time.Now,
	}
}

// WithEnv adds "KEY=VALUE" entries to the engine environment.
func (r *Runner) WithEnv(env ...string) *Runner {
	r.env = append(r.env, env...)
	return r
}

// Command returns the invocation used for every pass over target.
func Command(target domain.WatchTarget, engine domain.Engine) ports.Command {
	return ports.Command{
		Name: engine.String(),
		Args: []string{
			"-output-directory=" + target.OutputDir,
			"-interaction=nonstopmode",
			target.Source,
		},
		Dir: filepath.Dir(target.Source),
	}
}

// Compile runs Passes engine passes over target and reports the outcome.
//
// Compile never fails: every problem is described in the returned result.
// Cancellation of ctx does not interrupt a running pass.
func (r *Runner) Compile(ctx context.Context, target domain.WatchTarget, engine domain.Engine) domain.CompileResult {
	ctx = context.WithoutCancel(ctx)
	start := r.now()

	ctx, span := r.tracer.Start(ctx, "compile "+target.Name(),
		ports.WithAttribute("engine", engine.String()),
		ports.WithAttribute("source", target.Source),
	)
	defer span.End()

	var log transcript
	result := r.compile(ctx, target, engine, &log)
	result.Log = log.String()
	result.Duration = r.now().Sub(start)

	span.SetAttribute("success", result.Success)
	if result.Err != nil {
		span.RecordError(result.Err)
	}

	return result
}

func (r *Runner) compile(
	ctx context.Context,
	target domain.WatchTarget,
	engine domain.Engine,
	log *transcript,
) domain.CompileResult {
	if _, err := os.Stat(target.Source); err != nil {
		log.add("Error: File not found at " + target.Source)
		return domain.CompileResult{
			Err: errors.Join(domain.ErrCompilationFailed, zerr.Wrap(domain.ErrSourceNotFound, target.Source)),
		}
	}

	log.add(fmt.Sprintf("Compiling %s with '%s' into %s...", target.Name(), engine, target.OutputDir))

	cmd := Command(target, engine)
	cmd.Env = r.env
	for pass := 1; pass <= Passes; pass++ {
		log.add(fmt.Sprintf("--- Pass %d ---", pass))

		if err := r.runPass(ctx, cmd, pass); err != nil {
			return failure(target, engine, pass, err, log)
		}
	}

	log.add("", "Compilation successful.")
	return domain.CompileResult{
		Success:  true,
		Artifact: target.ArtifactPath(),
	}
}

func (r *Runner) runPass(ctx context.Context, cmd ports.Command, pass int) error {
	ctx, span := r.tracer.Start(ctx, fmt.Sprintf("pass %d", pass), ports.WithAttribute("pass", pass))
	defer span.End()

	err := r.executor.Execute(ctx, cmd, span)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func failure(
	target domain.WatchTarget,
	engine domain.Engine,
	pass int,
	err error,
	log *transcript,
) domain.CompileResult {
	if errors.Is(err, domain.ErrEngineNotFound) {
		log.add(fmt.Sprintf(
			"Error: '%s' command not found. Please ensure it is installed and in your system's PATH.", engine))
		return domain.CompileResult{Err: err}
	}

	compileErr := zerr.With(zerr.Wrap(domain.ErrCompilationFailed, target.Name()), "pass", pass)

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		log.add(fmt.Sprintf("Error: could not run '%s': %v", engine, err))
		return domain.CompileResult{Err: errors.Join(compileErr, err)}
	}

	log.add("", "Compilation failed.")

	logPath := target.LogPath()
	if _, statErr := os.Stat(logPath); statErr != nil {
		log.add("Compilation failed and no log file was produced.")
		return domain.CompileResult{Err: errors.Join(compileErr, err)}
	}

	log.add("An error occurred. See the log file for details: " + logPath)

	excerpt, ok := readExcerpt(logPath)
	if !ok {
		log.add("Could not parse log file for a specific error.")
		return domain.CompileResult{Err: errors.Join(compileErr, domain.ErrLogParseFailed, err)}
	}

	log.add("", excerptHeader, excerpt, excerptFooter)
	return domain.CompileResult{
		Excerpt: excerpt,
		Err:     errors.Join(compileErr, err),
	}
}

func readExcerpt(logPath string) (string, bool) {
	data, err := os.ReadFile(logPath) //nolint:gosec // path derived from the watch target
	if err != nil {
		return "", false
	}
	return ExtractError(string(data))
}

// transcript collects the human-readable compilation log line by line.
type transcript struct {
	lines []string
}

func (t *transcript) add(lines ...string) {
	t.lines = append(t.lines, lines...)
}

func (t *transcript) String() string {
	return strings.Join(t.lines, "\n")
}
