package domain

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mouse-blink/dtm/internal/adapter"
	"github.com/mouse-blink/dtm/internal/controller"
	"github.com/mouse-blink/dtm/internal/logging"
	m "github.com/mouse-blink/dtm/internal/model"
)

// verdict is what a synthetic oracle does for one version.
type verdict int

const (
	pass verdict = iota
	failTests
	failInstall
	failLaunch
)

// fakeOracle answers from a fixed verdict table and records every call.
type fakeOracle struct {
	pkg      string
	env      *adapter.Environment
	versions m.VersionList
	verdicts func(i int) verdict
	// installHook and testHook run inside the probe, before the verdict is returned.
	installHook func(ctx context.Context) error
	testHook    func(ctx context.Context) error

	mu           sync.Mutex
	installs     []m.Version
	tests        []m.Version
	current      m.Version
	enumerations int
}

var _ adapter.Oracle = (*fakeOracle)(nil)

func newFakeOracle(n int, verdicts func(i int) verdict) *fakeOracle {
	versions := make(m.VersionList, n)
	for i := range versions {
		versions[i] = m.Version(fmt.Sprintf("1.%d.0", i))
	}

	return &fakeOracle{pkg: "widget", versions: versions, verdicts: verdicts}
}

// monotonic passes indexes <= k and fails tests above it.
func monotonic(k int) func(int) verdict {
	return func(i int) verdict {
		if i <= k {
			return pass
		}

		return failTests
	}
}

func pattern(vs ...verdict) func(int) verdict {
	return func(i int) verdict { return vs[i] }
}

func (o *fakeOracle) Package() string                   { return o.pkg }
func (o *fakeOracle) Ecosystem() m.Ecosystem            { return m.Python }
func (o *fakeOracle) Environment() *adapter.Environment { return o.env }
func (o *fakeOracle) Comparator() m.Comparator          { return m.SemverComparator }

func (o *fakeOracle) EnumerateVersions(_ context.Context) (m.VersionList, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.enumerations++

	return append(m.VersionList(nil), o.versions...), nil
}

func (o *fakeOracle) InstallVersion(ctx context.Context, v m.Version) error {
	o.mu.Lock()
	o.installs = append(o.installs, v)
	o.current = v
	o.mu.Unlock()

	if o.installHook != nil {
		if err := o.installHook(ctx); err != nil {
			return &m.InstallError{Package: o.pkg, Version: v, Err: err}
		}
	}

	if o.verdicts(o.versions.Index(v)) == failInstall {
		return &m.InstallError{Package: o.pkg, Version: v, Output: "resolution impossible", Err: adapter.ErrNonZeroExit}
	}

	return nil
}

func (o *fakeOracle) RunTests(ctx context.Context, command string) (m.TestRun, error) {
	o.mu.Lock()
	v := o.current
	o.tests = append(o.tests, v)
	o.mu.Unlock()

	if o.testHook != nil {
		if err := o.testHook(ctx); err != nil {
			return m.TestRun{Output: "killed"}, err
		}
	}

	switch o.verdicts(o.versions.Index(v)) {
	case pass:
		return m.TestRun{Passed: true, Output: "ok"}, nil
	case failLaunch:
		return m.TestRun{}, &m.TestExecutionError{Command: command, Err: errors.New("executable file not found")}
	default:
		return m.TestRun{Passed: false, Output: "FAILED"}, nil
	}
}

func (o *fakeOracle) calls() (installs, tests []m.Version) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]m.Version(nil), o.installs...), append([]m.Version(nil), o.tests...)
}

// diagnosingOracle adds conflict diagnosis on top of fakeOracle.
type diagnosingOracle struct {
	*fakeOracle

	report    m.ConflictReport
	diagnosed []m.Version
}

var _ adapter.ConflictDiagnoser = (*diagnosingOracle)(nil)

func (o *diagnosingOracle) DiagnoseConflicts(_ context.Context, v m.Version) (m.ConflictReport, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.diagnosed = append(o.diagnosed, v)
	if o.report.Empty() {
		return nil, false
	}

	return o.report, true
}

// restoringOracle counts Restore calls.
type restoringOracle struct {
	*fakeOracle

	restores atomic.Int32
}

var _ adapter.Restorer = (*restoringOracle)(nil)

func (o *restoringOracle) Restore(_ context.Context) error {
	o.restores.Add(1)

	return nil
}

// nopUI ignores progress; used where the UI is not under test.
type nopUI struct{}

var _ controller.UI = nopUI{}

func (nopUI) Start(...controller.StartOption) error                   { return nil }
func (nopUI) Close()                                                  {}
func (nopUI) Wait()                                                   {}
func (nopUI) DisplayAnalysisStart(string, m.Ecosystem, m.VersionList) {}
func (nopUI) DisplayProbeStarted(string, int, m.Version)              {}
func (nopUI) DisplayProbeFinished(string, m.Probe)                    {}
func (nopUI) DisplayReport(m.PackageReport) error                     { return nil }
func (nopUI) DisplayAggregate(m.AggregateReport) error                { return nil }

func nopLog() logrus.FieldLogger {
	return logging.Nop()
}
