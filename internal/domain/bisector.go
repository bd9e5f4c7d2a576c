// Package domain holds the bisection search and the package analyzer that
// drives it.
package domain

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mouse-blink/dtm/internal/adapter"
	"github.com/mouse-blink/dtm/internal/controller"
	m "github.com/mouse-blink/dtm/internal/model"
)

// Bisector finds the boundary between the newest passing and the oldest
// failing version of a package.
type Bisector interface {
	Bisect(ctx context.Context, versions m.VersionList, oracle adapter.Oracle, testCommand string) (m.BisectionResult, error)
}

// BisectorOption configures a Bisector.
type BisectorOption func(*bisector)

// WithInstallTimeout bounds each install and diagnosis. Zero means no limit.
func WithInstallTimeout(d time.Duration) BisectorOption {
	return func(b *bisector) {
		b.installTimeout = d
	}
}

// WithTestTimeout bounds each test run. Zero means no limit.
func WithTestTimeout(d time.Duration) BisectorOption {
	return func(b *bisector) {
		b.testTimeout = d
	}
}

type bisector struct {
	ui             controller.UI
	log            logrus.FieldLogger
	installTimeout time.Duration
	testTimeout    time.Duration
}

// NewBisector constructs a Bisector reporting progress to ui.
func NewBisector(ui controller.UI, log logrus.FieldLogger, opts ...BisectorOption) Bisector {
	b := &bisector{ui: ui, log: log}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Bisect runs a binary search over versions, which must be in ascending
// order. Every probed version is classified independently; a pass moves the
// search up and any failure moves it down, so the result is exact when
// pass/fail is monotonic and some adjacent pass/fail pair otherwise.
//
// Cancellation of ctx stops new probes but lets the running one finish. The
// partial result is returned with Interrupted set, along with ctx's error.
func (b *bisector) Bisect(ctx context.Context, versions m.VersionList, oracle adapter.Oracle,
	testCommand string) (m.BisectionResult, error) {
	res := m.NewBisectionResult(len(versions))
	log := b.log.WithFields(logrus.Fields{"package": oracle.Package(), "ecosystem": oracle.Ecosystem()})

	low, high := 0, len(versions)-1
	for low <= high {
		if err := ctx.Err(); err != nil {
			res.Interrupted = true

			return res, err
		}

		mid := (low + high) / 2

		probe, err := b.probe(ctx, oracle, mid, versions[mid], testCommand, log)
		if err != nil {
			res.Interrupted = true

			return res, err
		}

		res.Probes = append(res.Probes, probe)

		if probe.Passed() {
			res.LatestWorking = probe.Version.Ptr()
			res.LatestWorkingIndex = mid
			low = mid + 1

			continue
		}

		res.FirstBroken = probe.Version.Ptr()
		res.FirstBrokenIndex = mid
		high = mid - 1

		if !probe.Conflicts.Empty() {
			res.Conflicts = probe.Conflicts
		}
	}

	log.WithFields(logrus.Fields{
		"latest_working": res.LatestWorking,
		"first_broken":   res.FirstBroken,
		"probes":         len(res.Probes),
		"confidence":     res.Confidence(),
	}).Info("bisection finished")

	return res, nil
}

// probe installs and tests one version while holding the environment. The
// returned error is non-nil only when ctx was cancelled before the
// environment could be acquired.
func (b *bisector) probe(ctx context.Context, oracle adapter.Oracle, index int, v m.Version,
	testCommand string, log logrus.FieldLogger) (m.Probe, error) {
	if env := oracle.Environment(); env != nil {
		if err := env.Acquire(ctx); err != nil {
			return m.Probe{}, err
		}
		defer env.Release()
	}

	log = log.WithFields(logrus.Fields{"version": v, "probe": index})
	b.ui.DisplayProbeStarted(oracle.Package(), index, v)

	// The probe runs to completion even if ctx is cancelled meanwhile.
	probeCtx := context.WithoutCancel(ctx)
	start := time.Now()
	probe := m.Probe{Index: index, Version: v}

	b.installAndTest(probeCtx, oracle, &probe, testCommand, log)

	if restorer, ok := oracle.(adapter.Restorer); ok {
		if err := restorer.Restore(probeCtx); err != nil {
			log.WithError(err).Warn("could not restore project files after probe")
		}
	}

	probe.Duration = time.Since(start)
	b.ui.DisplayProbeFinished(oracle.Package(), probe)

	return probe, nil
}

func (b *bisector) installAndTest(ctx context.Context, oracle adapter.Oracle, probe *m.Probe,
	testCommand string, log logrus.FieldLogger) {
	installCtx, cancel := withOptionalTimeout(ctx, b.installTimeout)
	err := oracle.InstallVersion(installCtx, probe.Version)
	cancel()

	if err != nil {
		probe.Outcome = m.InstallFailed
		probe.Err = err

		var installErr *m.InstallError
		if errors.As(err, &installErr) {
			probe.Output = installErr.Output
		}

		log.WithError(err).Info("install failed")
		probe.Conflicts = b.diagnose(ctx, oracle, probe.Version, log)

		return
	}

	testCtx, cancel := withOptionalTimeout(ctx, b.testTimeout)
	run, err := oracle.RunTests(testCtx, testCommand)
	cancel()

	probe.Output = run.Output

	switch {
	case err != nil:
		probe.Outcome = m.TestsFailed
		probe.Err = err

		if probe.ExecutionFailed() {
			log.WithError(err).Warn("test command could not be executed")
		} else {
			log.WithError(err).Info("tests did not complete")
		}
	case run.Passed:
		probe.Outcome = m.TestsPassed

		log.Info("tests passed")
	default:
		probe.Outcome = m.TestsFailed

		log.Info("tests failed")
	}
}

func (b *bisector) diagnose(ctx context.Context, oracle adapter.Oracle, v m.Version, log logrus.FieldLogger) m.ConflictReport {
	diagnoser, ok := oracle.(adapter.ConflictDiagnoser)
	if !ok {
		return nil
	}

	diagCtx, cancel := withOptionalTimeout(ctx, b.installTimeout)
	defer cancel()

	report, ok := diagnoser.DiagnoseConflicts(diagCtx, v)
	if !ok || report.Empty() {
		return nil
	}

	log.WithField("dependencies", report.Dependencies()).Info("dependency conflicts detected")

	return report
}

func withOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, d)
}
