package adapter

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	m "github.com/mouse-blink/dtm/internal/model"
)

var (
	// ErrLaunch indicates the command could not be started at all.
	ErrLaunch = errors.New("command could not be started")
	// ErrNonZeroExit indicates the command ran and exited unsuccessfully.
	ErrNonZeroExit = errors.New("command exited with non-zero status")
	// ErrEmptyCommand indicates a blank command line.
	ErrEmptyCommand = errors.New("empty command")
)

// killGrace is how long a killed command gets to release its pipes.
const killGrace = 5 * time.Second

// CommandSpec describes one external command invocation.
type CommandSpec struct {
	Dir  string
	Env  []string
	Name string
	Args []string
}

func (s CommandSpec) String() string {
	return strings.TrimSpace(s.Name + " " + strings.Join(s.Args, " "))
}

// ParseCommandLine splits a whitespace separated command line into a spec.
// Quoting is not interpreted.
func ParseCommandLine(dir, line string) (CommandSpec, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return CommandSpec{}, ErrEmptyCommand
	}

	return CommandSpec{Dir: dir, Name: fields[0], Args: fields[1:]}, nil
}

// CommandResult captures a finished external command.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Combined returns stdout followed by stderr.
func (r CommandResult) Combined() string {
	switch {
	case r.Stdout == "":
		return r.Stderr
	case r.Stderr == "":
		return r.Stdout
	default:
		return r.Stdout + "\n" + r.Stderr
	}
}

// CommandRunner executes external commands. Implementations must kill the
// command when ctx is done.
type CommandRunner interface {
	// Run executes spec and waits for it. The error wraps ErrLaunch when the
	// command never started, m.ErrProbeTimeout when ctx expired and
	// ErrNonZeroExit when it finished unsuccessfully.
	Run(ctx context.Context, spec CommandSpec) (CommandResult, error)
}

// LocalCommandRunner runs commands with os/exec in their own process group.
type LocalCommandRunner struct {
	log logrus.FieldLogger
}

// NewLocalCommandRunner constructs a LocalCommandRunner.
func NewLocalCommandRunner(log logrus.FieldLogger) *LocalCommandRunner {
	return &LocalCommandRunner{log: log}
}

// Run executes spec, killing the whole process group when ctx is done.
func (r *LocalCommandRunner) Run(ctx context.Context, spec CommandSpec) (CommandResult, error) {
	if spec.Name == "" {
		return CommandResult{}, ErrEmptyCommand
	}

	// #nosec G204 - commands come from the user's configuration
	cmd := exec.CommandContext(ctx, spec.Name, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = append(os.Environ(), spec.Env...)
	cmd.WaitDelay = killGrace
	configureProcessGroup(cmd)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log := r.log.WithFields(logrus.Fields{"command": spec.String(), "dir": spec.Dir})
	log.Debug("executing command")

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return CommandResult{}, errors.Wrapf(ErrLaunch, "%s: %v", spec.Name, err)
	}

	waitErr := cmd.Wait()
	result := CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
		Duration: time.Since(start),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		log.WithField("elapsed", result.Duration).Debug("command killed")

		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return result, errors.Wrapf(m.ErrProbeTimeout, "%s after %s", spec.Name, result.Duration.Round(time.Second))
		}

		return result, errors.Wrap(ctxErr, spec.Name)
	}

	if waitErr != nil {
		log.WithFields(logrus.Fields{"exit_code": result.ExitCode, "elapsed": result.Duration}).Debug("command failed")

		return result, errors.Wrapf(ErrNonZeroExit, "%s: %v", spec.Name, waitErr)
	}

	log.WithField("elapsed", result.Duration).Debug("command succeeded")

	return result, nil
}
