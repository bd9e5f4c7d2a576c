package domain

import (
	"context"
	"math/bits"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/dtm/internal/adapter"
	controllermocks "github.com/mouse-blink/dtm/internal/controller/mocks"
	"github.com/mouse-blink/dtm/internal/logging"
	m "github.com/mouse-blink/dtm/internal/model"
)

func newTestBisector(opts ...BisectorOption) Bisector {
	return NewBisector(nopUI{}, logging.Nop(), opts...)
}

func TestBisect_MonotonicCorrectness(t *testing.T) {
	for _, n := range []int{1, 2, 10, 1000} {
		maxProbes := bits.Len(uint(n-1)) + 1

		for k := 0; k < n; k++ {
			oracle := newFakeOracle(n, monotonic(k))

			res, err := newTestBisector().Bisect(context.Background(), oracle.versions, oracle, "pytest")
			require.NoError(t, err)

			require.NotNil(t, res.LatestWorking, "n=%d k=%d", n, k)
			assert.Equal(t, oracle.versions[k], *res.LatestWorking, "n=%d k=%d", n, k)
			assert.Equal(t, k, res.LatestWorkingIndex)

			if k == n-1 {
				assert.Nil(t, res.FirstBroken, "n=%d k=%d", n, k)
			} else {
				require.NotNil(t, res.FirstBroken, "n=%d k=%d", n, k)
				assert.Equal(t, oracle.versions[k+1], *res.FirstBroken, "n=%d k=%d", n, k)
			}

			assert.LessOrEqual(t, len(res.Probes), maxProbes, "n=%d k=%d", n, k)
			assert.Equal(t, m.ConfidenceHigh, res.Confidence())
			assert.False(t, res.Interrupted)
		}
	}
}

func TestBisect_AllPass(t *testing.T) {
	oracle := newFakeOracle(10, func(int) verdict { return pass })

	res, err := newTestBisector().Bisect(context.Background(), oracle.versions, oracle, "pytest")
	require.NoError(t, err)

	assert.Nil(t, res.FirstBroken)
	require.NotNil(t, res.LatestWorking)
	assert.Equal(t, m.Version("1.9.0"), *res.LatestWorking)
	assert.Nil(t, res.Conflicts)
}

func TestBisect_AllFailInstall(t *testing.T) {
	allFail := func(int) verdict { return failInstall }

	t.Run("without diagnosis capability", func(t *testing.T) {
		oracle := newFakeOracle(10, allFail)

		res, err := newTestBisector().Bisect(context.Background(), oracle.versions, oracle, "pytest")
		require.NoError(t, err)

		assert.Nil(t, res.LatestWorking)
		require.NotNil(t, res.FirstBroken)
		assert.Equal(t, m.Version("1.0.0"), *res.FirstBroken)
		assert.Nil(t, res.Conflicts)

		_, tests := oracle.calls()
		assert.Empty(t, tests, "tests never run when install fails")
	})

	t.Run("with matching diagnostics", func(t *testing.T) {
		report := m.ConflictReport{}
		report.Add("urllib3", "requests 2.31.0 requires urllib3 <1.27 but resolved urllib3==2.0.0")
		oracle := &diagnosingOracle{fakeOracle: newFakeOracle(10, allFail), report: report}

		res, err := newTestBisector().Bisect(context.Background(), oracle.versions, oracle, "pytest")
		require.NoError(t, err)

		assert.Nil(t, res.LatestWorking)
		assert.Equal(t, m.Version("1.0.0"), *res.FirstBroken)
		assert.Equal(t, report, res.Conflicts)
		assert.Len(t, oracle.diagnosed, len(res.Probes), "every failed install is diagnosed once")
	})

	t.Run("with unmatched diagnostics", func(t *testing.T) {
		oracle := &diagnosingOracle{fakeOracle: newFakeOracle(10, allFail)}

		res, err := newTestBisector().Bisect(context.Background(), oracle.versions, oracle, "pytest")
		require.NoError(t, err)

		assert.Nil(t, res.Conflicts)
		assert.NotEmpty(t, oracle.diagnosed)
	})
}

func TestBisect_EmptyInput(t *testing.T) {
	oracle := newFakeOracle(0, monotonic(0))

	res, err := newTestBisector().Bisect(context.Background(), nil, oracle, "pytest")
	require.NoError(t, err)

	assert.Nil(t, res.LatestWorking)
	assert.Nil(t, res.FirstBroken)
	assert.Nil(t, res.Conflicts)
	assert.Empty(t, res.Probes)
	assert.Equal(t, 0, res.Total)

	installs, tests := oracle.calls()
	assert.Empty(t, installs)
	assert.Empty(t, tests)
	assert.Equal(t, 0, oracle.enumerations)
}

func TestBisect_InstallFailureIsBrokenEvenIfTestsWouldPass(t *testing.T) {
	// 0..4 pass, 5 cannot be installed, 6.. fail their tests.
	verdicts := func(i int) verdict {
		switch {
		case i <= 4:
			return pass
		case i == 5:
			return failInstall
		default:
			return failTests
		}
	}

	report := m.ConflictReport{}
	report.Add("numpy", "widget 1.5.0 requires numpy >=2 but resolved numpy==1.26.4")
	oracle := &diagnosingOracle{fakeOracle: newFakeOracle(10, verdicts), report: report}

	res, err := newTestBisector().Bisect(context.Background(), oracle.versions, oracle, "pytest")
	require.NoError(t, err)

	assert.Equal(t, m.Version("1.4.0"), *res.LatestWorking)
	assert.Equal(t, m.Version("1.5.0"), *res.FirstBroken)
	assert.Equal(t, []m.Version{"1.5.0"}, oracle.diagnosed)
	assert.Equal(t, report, res.Conflicts)

	var boundary *m.Probe
	for i := range res.Probes {
		if res.Probes[i].Version == "1.5.0" {
			boundary = &res.Probes[i]
		}
	}

	require.NotNil(t, boundary)
	assert.Equal(t, m.InstallFailed, boundary.Outcome)

	var installErr *m.InstallError
	require.ErrorAs(t, boundary.Err, &installErr)
	assert.Equal(t, "resolution impossible", boundary.Output)
}

func TestBisect_NonMonotonicConvergence(t *testing.T) {
	// pass, pass, fail, pass, fail: the first probe lands on the failing
	// middle version, so the later passing version is never examined.
	oracle := newFakeOracle(5, pattern(pass, pass, failTests, pass, failTests))

	res, err := newTestBisector().Bisect(context.Background(), oracle.versions, oracle, "pytest")
	require.NoError(t, err)

	assert.Equal(t, m.Version("1.1.0"), *res.LatestWorking)
	assert.Equal(t, m.Version("1.2.0"), *res.FirstBroken)

	installs, _ := oracle.calls()
	assert.Equal(t, []m.Version{"1.2.0", "1.0.0", "1.1.0"}, installs)
	assert.NotContains(t, installs, m.Version("1.3.0"))
}

func TestBisect_KeepsMostRecentConflictReport(t *testing.T) {
	oracle := newFakeOracle(7, func(int) verdict { return failInstall })

	reports := map[m.Version]m.ConflictReport{
		"1.3.0": {"a": {"first"}},
		"1.1.0": {"b": {"second"}},
	}
	diag := &versionedDiagnoser{fakeOracle: oracle, reports: reports}

	res, err := newTestBisector().Bisect(context.Background(), oracle.versions, diag, "pytest")
	require.NoError(t, err)

	// Probes go 1.3.0, 1.1.0, 1.0.0; the last has no report and must not clear the earlier one.
	assert.Equal(t, m.ConflictReport{"b": {"second"}}, res.Conflicts)
}

type versionedDiagnoser struct {
	*fakeOracle

	reports map[m.Version]m.ConflictReport
}

func (o *versionedDiagnoser) DiagnoseConflicts(_ context.Context, v m.Version) (m.ConflictReport, bool) {
	r, ok := o.reports[v]

	return r, ok
}

func TestBisect_ExecutionErrorCountsAsFailure(t *testing.T) {
	oracle := newFakeOracle(3, pattern(pass, failLaunch, failLaunch))

	res, err := newTestBisector().Bisect(context.Background(), oracle.versions, oracle, "pytset")
	require.NoError(t, err)

	assert.Equal(t, m.Version("1.0.0"), *res.LatestWorking)
	assert.Equal(t, m.Version("1.1.0"), *res.FirstBroken)

	require.NotEmpty(t, res.Probes)
	first := res.Probes[0]
	assert.Equal(t, m.TestsFailed, first.Outcome)
	assert.True(t, first.ExecutionFailed())
}

func TestBisect_Timeouts(t *testing.T) {
	blockUntilDone := func(ctx context.Context) error {
		<-ctx.Done()

		return errors.Wrap(m.ErrProbeTimeout, ctx.Err().Error())
	}

	t.Run("install", func(t *testing.T) {
		oracle := newFakeOracle(1, monotonic(0))
		oracle.installHook = blockUntilDone

		res, err := newTestBisector(WithInstallTimeout(20*time.Millisecond)).
			Bisect(context.Background(), oracle.versions, oracle, "pytest")
		require.NoError(t, err)

		require.Len(t, res.Probes, 1)
		assert.Equal(t, m.InstallFailed, res.Probes[0].Outcome)
		assert.True(t, res.Probes[0].TimedOut())
		assert.Equal(t, m.Version("1.0.0"), *res.FirstBroken)
	})

	t.Run("tests", func(t *testing.T) {
		oracle := newFakeOracle(1, monotonic(0))
		oracle.testHook = blockUntilDone

		res, err := newTestBisector(WithTestTimeout(20*time.Millisecond)).
			Bisect(context.Background(), oracle.versions, oracle, "pytest")
		require.NoError(t, err)

		require.Len(t, res.Probes, 1)
		assert.Equal(t, m.TestsFailed, res.Probes[0].Outcome)
		assert.True(t, res.Probes[0].TimedOut())
		assert.Equal(t, "killed", res.Probes[0].Output)
	})
}

func TestBisect_CancellationFinishesProbeAndStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	oracle := newFakeOracle(10, monotonic(3))

	var probeCtxErr error

	oracle.testHook = func(probeCtx context.Context) error {
		cancel()
		probeCtxErr = probeCtx.Err()

		return nil
	}

	res, err := newTestBisector().Bisect(ctx, oracle.versions, oracle, "pytest")
	require.ErrorIs(t, err, context.Canceled)

	assert.NoError(t, probeCtxErr, "the running probe is not cancelled")
	assert.True(t, res.Interrupted)
	require.Len(t, res.Probes, 1)
	assert.Equal(t, m.TestsFailed, res.Probes[0].Outcome)
	assert.Equal(t, m.Version("1.4.0"), *res.FirstBroken)
	assert.Equal(t, m.ConfidenceLow, res.Confidence())
	assert.Equal(t, 4, res.Gap())
}

func TestBisect_ProbesOfSharedEnvironmentDoNotOverlap(t *testing.T) {
	env := adapter.NewEnvironment("project", t.TempDir(), false)
	slow := func(context.Context) error {
		time.Sleep(5 * time.Millisecond)

		return nil
	}

	first := newFakeOracle(8, monotonic(4))
	second := newFakeOracle(8, monotonic(2))

	for _, o := range []*fakeOracle{first, second} {
		o.env = env
	}

	shared := &sharedCounter{}
	first.installHook = shared.wrap(slow)
	second.installHook = shared.wrap(slow)

	var wg sync.WaitGroup

	for _, o := range []*fakeOracle{first, second} {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := newTestBisector().Bisect(context.Background(), o.versions, o, "pytest")
			assert.NoError(t, err)
		}()
	}

	wg.Wait()
	assert.Equal(t, int32(1), shared.max())
}

// sharedCounter tracks how many installs run at once across oracles.
type sharedCounter struct {
	mu      sync.Mutex
	active  int32
	highest int32
}

func (c *sharedCounter) wrap(next func(context.Context) error) func(context.Context) error {
	return func(ctx context.Context) error {
		c.mu.Lock()
		c.active++
		if c.active > c.highest {
			c.highest = c.active
		}
		c.mu.Unlock()

		defer func() {
			c.mu.Lock()
			c.active--
			c.mu.Unlock()
		}()

		return next(ctx)
	}
}

func (c *sharedCounter) max() int32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.highest
}

func TestBisect_RestoresAfterEveryProbe(t *testing.T) {
	oracle := &restoringOracle{fakeOracle: newFakeOracle(10, monotonic(6))}

	res, err := newTestBisector().Bisect(context.Background(), oracle.versions, oracle, "pytest")
	require.NoError(t, err)

	assert.Equal(t, int32(len(res.Probes)), oracle.restores.Load())
}

func TestBisect_ReportsProgress(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	oracle := newFakeOracle(2, monotonic(0))

	ui.EXPECT().DisplayProbeStarted("widget", 0, m.Version("1.0.0")).Return().Once()
	ui.EXPECT().DisplayProbeStarted("widget", 1, m.Version("1.1.0")).Return().Once()
	ui.EXPECT().DisplayProbeFinished("widget", mock.MatchedBy(func(p m.Probe) bool {
		return p.Version == "1.0.0" && p.Outcome == m.TestsPassed
	})).Return().Once()
	ui.EXPECT().DisplayProbeFinished("widget", mock.MatchedBy(func(p m.Probe) bool {
		return p.Version == "1.1.0" && p.Outcome == m.TestsFailed
	})).Return().Once()

	res, err := NewBisector(ui, logging.Nop()).Bisect(context.Background(), oracle.versions, oracle, "pytest")
	require.NoError(t, err)
	assert.Len(t, res.Probes, 2)
}
