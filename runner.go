package texmk

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/alnah/go-texmk/internal/fileutil"
	"github.com/alnah/go-texmk/internal/hints"
	"github.com/alnah/go-texmk/internal/process"
)

// RunResult is the structured outcome of one external program invocation.
type RunResult struct {
	ExitCode int
	Stderr   string
}

// CommandRunner abstracts process execution to enable testing without real
// subprocesses. A nonzero child exit status is reported through RunResult,
// not through the error; the error is reserved for failures to run the
// program at all.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (RunResult, error)
}

// ExecRunner implements CommandRunner using os/exec. The child process
// inherits the configured stdout and stderr writers, so typesetter output
// stays visible while stderr is also captured for the result.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates an ExecRunner wired to the process's own streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (RunResult, error) {
	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = io.MultiWriter(r.Stderr, &stderr)

	// Run the child in its own process group so that cancellation also
	// stops anything it spawned.
	process.Group(cmd)
	cmd.Cancel = func() error {
		process.KillGroup(cmd.Process.Pid)
		return cmd.Process.Kill()
	}

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return RunResult{ExitCode: exitErr.ExitCode(), Stderr: stderr.String()}, nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		return RunResult{ExitCode: -1}, fmt.Errorf("running %s: %w%s", name, err, hints.ForMissingProgram(name))
	}
	if err != nil {
		return RunResult{ExitCode: -1}, fmt.Errorf("running %s: %w", name, err)
	}
	return RunResult{Stderr: stderr.String()}, nil
}

// Sequence walks a resolved configuration's program sequence, building and
// executing each external command synchronously. Step i+1 never starts
// before step i's process has exited.
type Sequence struct {
	cfg           *Config
	runner        CommandRunner
	log           zerolog.Logger
	dryRun        bool
	stopOnFailure bool
}

// Run executes every sequence entry in order against the given filename.
// An unknown program is fatal before any further step runs. By default a
// program's own failure does not stop the sequence; stopOnFailure makes a
// nonzero exit status fatal.
func (s *Sequence) Run(ctx context.Context, filename string) error {
	for _, name := range s.cfg.Sequence {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.runStep(ctx, name, filename); err != nil {
			return err
		}
	}
	return nil
}

// runStep executes one sequence entry, including the rerun loop for
// programs with aux-file change detection.
func (s *Sequence) runStep(ctx context.Context, name, filename string) error {
	spec, ok := s.cfg.Programs[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProgram, name)
	}
	if spec.Command == "" {
		s.log.Debug().Str("program", name).Msg("program has no command, skipping")
		return nil
	}

	cmd := BuildCommand(filename, spec)

	// Programs without an aux file run exactly once. With one, the step is
	// rerun while the file's content keeps changing, up to MaxRepeat total
	// runs, so unresolved cross-references settle.
	maxRuns := 1
	var auxPath string
	if spec.AuxFile != "" {
		auxPath = expandPlaceholders(spec.AuxFile, filename)
		if s.cfg.MaxRepeat > 1 {
			maxRuns = s.cfg.MaxRepeat
		}
	}

	prev := fileutil.Digest(auxPath)
	for run := 1; run <= maxRuns; run++ {
		s.log.Info().Str("program", name).Str("command", cmd.String()).Msg("run")
		if s.dryRun {
			return nil
		}

		result, err := s.runner.Run(ctx, cmd.Name, cmd.Args...)
		if err != nil {
			if s.stopOnFailure {
				return fmt.Errorf("%w: %v", ErrProcessFailed, err)
			}
			s.log.Error().Err(err).Str("program", name).Msg("could not run program")
			return nil
		}
		if result.ExitCode != 0 {
			if s.stopOnFailure {
				return fmt.Errorf("%w: %s exited with status %d", ErrProcessFailed, name, result.ExitCode)
			}
			s.log.Warn().Int("status", result.ExitCode).Str("program", name).Msg("program exited nonzero")
		}

		if auxPath == "" {
			return nil
		}
		next := fileutil.Digest(auxPath)
		if next == prev {
			return nil
		}
		prev = next
		if run < maxRuns {
			s.log.Debug().Str("program", name).Str("aux", auxPath).Msg("aux file changed, rerunning")
		}
	}
	return nil
}
