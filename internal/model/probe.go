package model

import (
	"time"

	"github.com/pkg/errors"
)

// ProbeOutcome is the verdict for a single probed version.
type ProbeOutcome int

// Available ProbeOutcome values.
const (
	InstallFailed ProbeOutcome = iota
	TestsFailed
	TestsPassed
)

func (o ProbeOutcome) String() string {
	switch o {
	case InstallFailed:
		return "install_failed"
	case TestsFailed:
		return "tests_failed"
	case TestsPassed:
		return "tests_passed"
	default:
		return "unknown"
	}
}

// MarshalText renders the outcome by name.
func (o ProbeOutcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// TestRun is what a test command reported for the currently installed version.
type TestRun struct {
	Passed bool
	Output string
}

// Probe records one install+test cycle against a single version.
type Probe struct {
	Index     int
	Version   Version
	Outcome   ProbeOutcome
	Output    string
	Err       error
	Duration  time.Duration
	Conflicts ConflictReport
}

// Passed reports whether the version passed the test suite.
func (p Probe) Passed() bool {
	return p.Outcome == TestsPassed
}

// ExecutionFailed reports whether the test command could not be launched.
// Such probes narrow the search like a test failure but lower trust in it.
func (p Probe) ExecutionFailed() bool {
	var execErr *TestExecutionError

	return p.Outcome == TestsFailed && errors.As(p.Err, &execErr)
}

// TimedOut reports whether the probe hit its install or test deadline.
func (p Probe) TimedOut() bool {
	return errors.Is(p.Err, ErrProbeTimeout)
}
