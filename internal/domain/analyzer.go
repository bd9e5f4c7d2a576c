package domain

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/dtm/internal/adapter"
	"github.com/mouse-blink/dtm/internal/controller"
	m "github.com/mouse-blink/dtm/internal/model"
)

// ErrCancelled marks packages that were never analyzed because the run was cancelled.
var ErrCancelled = errors.New("analysis cancelled")

// Analyzer prepares a version list per package and bisects it.
type Analyzer interface {
	// AnalyzePackage bisects pkg in the shared project environment.
	AnalyzePackage(ctx context.Context, eco m.Ecosystem, pkg, testCommand string) m.PackageReport
	// AnalyzeAll bisects every package, isolating them when configured.
	// Failures are recorded per package and never stop the others.
	AnalyzeAll(ctx context.Context, eco m.Ecosystem, pkgs []string, testCommand string) m.AggregateReport
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*analyzer)

// WithWorkers bounds how many packages are analyzed at once.
func WithWorkers(n int) AnalyzerOption {
	return func(a *analyzer) {
		a.workers = n
	}
}

// WithIsolation gives every package in AnalyzeAll its own project copy.
func WithIsolation(isolate bool) AnalyzerOption {
	return func(a *analyzer) {
		a.isolate = isolate
	}
}

type analyzer struct {
	factory   adapter.OracleFactory
	workspace adapter.WorkspaceAdapter
	bisector  Bisector
	ui        controller.UI
	log       logrus.FieldLogger
	workers   int
	isolate   bool
}

// NewAnalyzer constructs an Analyzer from its collaborators.
func NewAnalyzer(factory adapter.OracleFactory, workspace adapter.WorkspaceAdapter, bisector Bisector,
	ui controller.UI, log logrus.FieldLogger, opts ...AnalyzerOption) Analyzer {
	a := &analyzer{
		factory:   factory,
		workspace: workspace,
		bisector:  bisector,
		ui:        ui,
		log:       log,
		workers:   1,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.workers <= 0 {
		a.workers = 1
	}

	return a
}

func (a *analyzer) AnalyzePackage(ctx context.Context, eco m.Ecosystem, pkg, testCommand string) m.PackageReport {
	return a.analyze(ctx, eco, pkg, testCommand, a.workspace.Shared())
}

func (a *analyzer) AnalyzeAll(ctx context.Context, eco m.Ecosystem, pkgs []string, testCommand string) m.AggregateReport {
	var (
		mu      sync.Mutex
		reports = make(m.AggregateReport, len(pkgs))
		g       errgroup.Group
	)

	record := func(report m.PackageReport) {
		mu.Lock()
		defer mu.Unlock()

		reports[report.Package] = report
	}

	g.SetLimit(a.workers)

	for _, pkg := range pkgs {
		if ctx.Err() != nil {
			record(a.failed(eco, pkg, ErrCancelled))

			continue
		}

		g.Go(func() error {
			if ctx.Err() != nil {
				record(a.failed(eco, pkg, ErrCancelled))

				return nil
			}

			if !a.isolate {
				record(a.analyze(ctx, eco, pkg, testCommand, a.workspace.Shared()))

				return nil
			}

			env, err := a.workspace.Isolated(pkg)
			if err != nil {
				record(a.failed(eco, pkg, errors.Wrap(err, "prepare isolated environment")))

				return nil
			}

			defer a.workspace.Dispose(env)

			record(a.analyze(ctx, eco, pkg, testCommand, env))

			return nil
		})
	}

	_ = g.Wait()

	return reports
}

func (a *analyzer) analyze(ctx context.Context, eco m.Ecosystem, pkg, testCommand string, env *adapter.Environment) m.PackageReport {
	log := a.log.WithFields(logrus.Fields{"package": pkg, "ecosystem": eco, "environment": env.ID})

	oracle, err := a.factory.NewOracle(eco, pkg, env)
	if err != nil {
		return a.failed(eco, pkg, err)
	}

	versions, err := oracle.EnumerateVersions(ctx)
	if err != nil {
		log.WithError(err).Error("could not enumerate versions")

		return a.failed(eco, pkg, err)
	}

	if len(versions) == 0 {
		log.Warn("no versions found")

		return a.failed(eco, pkg, errors.Wrap(m.ErrNoVersions, pkg))
	}

	if err := versions.Validate(oracle.Comparator()); err != nil {
		return a.failed(eco, pkg, err)
	}

	log.WithField("versions", len(versions)).Info("starting bisection")
	a.ui.DisplayAnalysisStart(pkg, eco, versions)

	res, err := a.bisector.Bisect(ctx, versions, oracle, testCommand)
	if err != nil {
		log.WithError(err).Warn("bisection interrupted")
	}

	a.restore(oracle, env, log)

	rec := m.NewRecord(pkg, eco, res)

	return m.PackageReport{Package: pkg, Ecosystem: eco, Record: &rec, Result: &res}
}

// restore puts back project files the oracle edited, under the environment lock.
func (a *analyzer) restore(oracle adapter.Oracle, env *adapter.Environment, log logrus.FieldLogger) {
	restorer, ok := oracle.(adapter.Restorer)
	if !ok {
		return
	}

	ctx := context.Background()
	if err := env.Acquire(ctx); err != nil {
		log.WithError(err).Debug("could not lock environment for restore")

		return
	}
	defer env.Release()

	if err := restorer.Restore(ctx); err != nil {
		log.WithError(err).Warn("could not restore project files")
	}
}

func (a *analyzer) failed(eco m.Ecosystem, pkg string, err error) m.PackageReport {
	return m.PackageReport{Package: pkg, Ecosystem: eco, Err: err}
}
