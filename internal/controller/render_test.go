package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/dtm/internal/adapter"
	m "github.com/mouse-blink/dtm/internal/model"
)

const sampleReportJSON = `{
	"package": "requests",
	"language": "python",
	"latest_working": "2.30.0",
	"first_broken": "2.31.0",
	"dependency_conflicts": {
		"urllib3": ["requests 2.31.0 requires urllib3 <1.27 but resolved urllib3==2.0.0"]
	},
	"total_versions": 10,
	"probes": 4,
	"confidence": "high"
}`

func sampleReport() m.PackageReport {
	return m.PackageReport{
		Package:   "requests",
		Ecosystem: m.Python,
		Record: &m.Record{
			Package:       "requests",
			Language:      m.Python,
			LatestWorking: m.Version("2.30.0").Ptr(),
			FirstBroken:   m.Version("2.31.0").Ptr(),
			DependencyConflicts: m.ConflictReport{
				"urllib3": {"requests 2.31.0 requires urllib3 <1.27 but resolved urllib3==2.0.0"},
			},
			TotalVersions: 10,
			Probes:        4,
			Confidence:    m.ConfidenceHigh,
		},
	}
}

func noVersionsReport() m.PackageReport {
	return m.PackageReport{Package: "ghost", Ecosystem: m.Python, Err: errors.Wrap(m.ErrNoVersions, "ghost")}
}

func TestValidFormat(t *testing.T) {
	for _, format := range []string{adapter.FormatJSON, adapter.FormatYAML, FormatTable} {
		assert.Truef(t, ValidFormat(format), "format %s", format)
	}

	assert.False(t, ValidFormat("xml"))
	assert.False(t, ValidFormat(""))
}

func TestUpgradeHint(t *testing.T) {
	tests := []struct {
		eco  m.Ecosystem
		pkg  string
		want string
	}{
		{m.Python, "requests", "pip install requests==2.30.0"},
		{m.JavaScript, "react", "npm install react@2.30.0"},
		{m.Rust, "serde", "cargo add serde@2.30.0"},
		{m.Go, "github.com/pkg/errors", "go get github.com/pkg/errors@2.30.0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UpgradeHint(tt.eco, tt.pkg, "2.30.0"))
	}
}

func TestRenderReport(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderReport(&buf, adapter.FormatJSON, sampleReport()))
		assert.JSONEq(t, sampleReportJSON, buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderReport(&buf, adapter.FormatYAML, sampleReport()))

		out := buf.String()
		assert.Contains(t, out, "package: requests\n")
		assert.Contains(t, out, "latest_working: 2.30.0\n")
		assert.Contains(t, out, "first_broken: 2.31.0\n")
		assert.Contains(t, out, "confidence: high\n")
		assert.NotContains(t, out, "interrupted")
	})

	t.Run("json without a boundary", func(t *testing.T) {
		report := sampleReport()
		report.Record.LatestWorking = nil
		report.Record.FirstBroken = nil
		report.Record.DependencyConflicts = nil

		var buf bytes.Buffer
		require.NoError(t, RenderReport(&buf, adapter.FormatJSON, report))
		assert.Contains(t, buf.String(), `"latest_working": null`)
		assert.Contains(t, buf.String(), `"dependency_conflicts": null`)
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderReport(&buf, FormatTable, sampleReport()))

		out := buf.String()
		assert.Contains(t, out, "requests")
		assert.Contains(t, out, "2.30.0")
		assert.Contains(t, out, "2.31.0")
		assert.Contains(t, out, "Dependency conflicts:")
		assert.Contains(t, out, "urllib3")
		assert.True(t, strings.HasSuffix(out, "Upgrade hint: pip install requests==2.30.0\n"))
	})

	t.Run("table without a working version has no hint", func(t *testing.T) {
		report := sampleReport()
		report.Record.LatestWorking = nil
		report.Record.Interrupted = true

		var buf bytes.Buffer
		require.NoError(t, RenderReport(&buf, FormatTable, report))
		assert.NotContains(t, buf.String(), "Upgrade hint")
		assert.Contains(t, buf.String(), "Interrupted")
	})

	t.Run("error report", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderReport(&buf, FormatTable, noVersionsReport()))
		assert.Equal(t, "ghost: no versions found (no_versions)\n", buf.String())

		buf.Reset()
		require.NoError(t, RenderReport(&buf, adapter.FormatJSON, noVersionsReport()))
		assert.JSONEq(t, `{"status": "no_versions", "message": "ghost: no versions found"}`, buf.String())
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		assert.ErrorIs(t, RenderReport(&buf, "xml", sampleReport()), ErrUnknownFormat)
		assert.Empty(t, buf.String())
	})
}

func TestRenderAggregate(t *testing.T) {
	reports := m.AggregateReport{
		"requests": sampleReport(),
		"ghost":    noVersionsReport(),
		"flask":    {Package: "flask", Ecosystem: m.Python, Err: errors.New("registry unreachable")},
	}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderAggregate(&buf, FormatTable, reports))

		out := buf.String()
		flask := strings.Index(out, "flask")
		ghost := strings.Index(out, "ghost")
		requests := strings.Index(out, "requests")

		require.True(t, flask >= 0 && ghost >= 0 && requests >= 0, out)
		assert.Less(t, flask, ghost, "rows are sorted by package")
		assert.Less(t, ghost, requests, "rows are sorted by package")
		assert.Contains(t, out, "no_versions")
		assert.Contains(t, out, "error")
		assert.Contains(t, strings.ToUpper(out), "TOTAL 3")
		assert.Contains(t, strings.ToUpper(out), "FAILED 2")
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderAggregate(&buf, adapter.FormatYAML, reports))

		out := buf.String()
		assert.Contains(t, out, "ghost:\n  status: no_versions\n")
		assert.Contains(t, out, "flask:\n  status: error\n  message: registry unreachable\n")
	})
}

func TestProbeLine(t *testing.T) {
	tests := []struct {
		name  string
		probe m.Probe
		want  string
	}{
		{
			name:  "passed",
			probe: m.Probe{Version: "1.0.0", Outcome: m.TestsPassed, Duration: 2049 * time.Millisecond},
			want:  "pkg 1.0.0 works [2s]",
		},
		{
			name:  "failed tests",
			probe: m.Probe{Version: "1.1.0", Outcome: m.TestsFailed, Duration: 150 * time.Millisecond},
			want:  "pkg 1.1.0 failed tests [200ms]",
		},
		{
			name: "timed out",
			probe: m.Probe{Version: "1.2.0", Outcome: m.TestsFailed, Duration: time.Minute,
				Err: errors.Wrap(m.ErrProbeTimeout, "pytest")},
			want: "pkg 1.2.0 failed tests (timed out) [1m0s]",
		},
		{
			name: "test command could not run",
			probe: m.Probe{Version: "1.3.0", Outcome: m.TestsFailed,
				Err: &m.TestExecutionError{Command: "pytest", Err: errors.New("not found")}},
			want: "pkg 1.3.0 failed tests (test command could not run) [0s]",
		},
		{
			name:  "install failure",
			probe: m.Probe{Version: "1.4.0", Outcome: m.InstallFailed},
			want:  "pkg 1.4.0 failed to install [0s]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, probeLine("pkg", tt.probe))
		})
	}
}
