package adapter

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mouse-blink/dtm/internal/diagnose"
	m "github.com/mouse-blink/dtm/internal/model"
)

// outputTailLines bounds how much command output is kept on a probe.
const outputTailLines = 40

// Oracle answers questions about the versions of one package in one
// evaluation environment. It holds no bisection logic.
type Oracle interface {
	// Package is the package this oracle installs.
	Package() string
	// Ecosystem identifies the registry and tooling in use.
	Ecosystem() m.Ecosystem
	// Environment is the evaluation environment installs mutate. It may be
	// nil when the oracle needs no exclusive access.
	Environment() *Environment
	// Comparator orders this ecosystem's versions.
	Comparator() m.Comparator
	// EnumerateVersions lists published versions in ascending order. An empty
	// list is not an error; registry failures are *m.RegistryError.
	EnumerateVersions(ctx context.Context) (m.VersionList, error)
	// InstallVersion makes v the active version. Failures are *m.InstallError.
	InstallVersion(ctx context.Context, v m.Version) error
	// RunTests runs command against whatever is installed. The error is
	// non-nil only when the command could not run to completion: it is a
	// *m.TestExecutionError when it never started, or wraps m.ErrProbeTimeout.
	RunTests(ctx context.Context, command string) (m.TestRun, error)
}

// ConflictDiagnoser is implemented by oracles that can explain failed installs.
type ConflictDiagnoser interface {
	Oracle
	// DiagnoseConflicts re-runs the install of v and extracts structured
	// conflicts from its diagnostics. ok is false when nothing could be extracted.
	DiagnoseConflicts(ctx context.Context, v m.Version) (report m.ConflictReport, ok bool)
}

// Restorer is implemented by oracles that edit project files while
// installing and can put them back once a bisection ends.
type Restorer interface {
	Restore(ctx context.Context) error
}

// baseOracle carries the plumbing shared by all ecosystem oracles.
type baseOracle struct {
	pkg    string
	eco    m.Ecosystem
	env    *Environment
	runner CommandRunner
	log    logrus.FieldLogger
}

func newBaseOracle(eco m.Ecosystem, pkg string, env *Environment, runner CommandRunner, log logrus.FieldLogger) baseOracle {
	return baseOracle{
		pkg:    pkg,
		eco:    eco,
		env:    env,
		runner: runner,
		log:    log.WithFields(logrus.Fields{"package": pkg, "ecosystem": eco}),
	}
}

func (o *baseOracle) Package() string           { return o.pkg }
func (o *baseOracle) Ecosystem() m.Ecosystem    { return o.eco }
func (o *baseOracle) Environment() *Environment { return o.env }
func (o *baseOracle) Comparator() m.Comparator  { return m.SemverComparator }
func (o *baseOracle) registryError(err error) error {
	return &m.RegistryError{Package: o.pkg, Ecosystem: o.eco, Err: err}
}

func (o *baseOracle) dir() string {
	if o.env == nil {
		return ""
	}

	return o.env.Dir
}

// install runs an install command and converts failures to *m.InstallError.
func (o *baseOracle) install(ctx context.Context, v m.Version, spec CommandSpec) error {
	res, err := o.runner.Run(ctx, spec)
	if err != nil {
		return &m.InstallError{Package: o.pkg, Version: v, Output: tail(res.Combined()), Err: err}
	}

	return nil
}

// runTests runs the test command with extra environment variables.
func (o *baseOracle) runTests(ctx context.Context, command string, env []string) (m.TestRun, error) {
	spec, err := ParseCommandLine(o.dir(), command)
	if err != nil {
		return m.TestRun{}, &m.TestExecutionError{Command: command, Err: err}
	}

	spec.Env = env

	res, err := o.runner.Run(ctx, spec)

	switch {
	case err == nil:
		return m.TestRun{Passed: true, Output: tail(res.Combined())}, nil
	case errors.Is(err, ErrLaunch):
		return m.TestRun{}, &m.TestExecutionError{Command: command, Err: err}
	case errors.Is(err, ErrNonZeroExit):
		return m.TestRun{Passed: false, Output: tail(res.Combined())}, nil
	default:
		return m.TestRun{Passed: false, Output: tail(res.Combined())}, err
	}
}

// diagnose re-runs an install spec without failing and pattern-matches its
// diagnostics.
func (o *baseOracle) diagnose(ctx context.Context, v m.Version, spec CommandSpec) (m.ConflictReport, bool) {
	res, err := o.runner.Run(ctx, spec)
	if err == nil {
		o.log.WithField("version", v).Debug("install succeeded on diagnosis rerun")

		return nil, false
	}

	report, diagErr := diagnose.Diagnose(o.eco, res.Combined())
	if diagErr != nil {
		o.log.WithField("version", v).WithError(diagErr).Debug("no structured conflicts")

		return nil, false
	}

	return report, true
}

// tail keeps the last outputTailLines lines of out.
func tail(out string) string {
	out = strings.TrimRight(out, "\n")

	lines := strings.Split(out, "\n")
	if len(lines) <= outputTailLines {
		return out
	}

	return strings.Join(lines[len(lines)-outputTailLines:], "\n")
}
