package controller

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/dtm/internal/adapter"
	m "github.com/mouse-blink/dtm/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return cmd, &out, &errOut
}

func TestSimpleUI_Progress(t *testing.T) {
	cmd, out, progress := newTestCommand()
	ui := NewSimpleUI(cmd, FormatTable)

	require.NoError(t, ui.Start(WithAggregateMode(3, 2)))
	ui.DisplayAnalysisStart("requests", m.Python, m.VersionList{"2.30.0", "2.31.0"})
	ui.DisplayProbeStarted("requests", 1, "2.31.0")
	ui.DisplayProbeFinished("requests", m.Probe{
		Index:    1,
		Version:  "2.31.0",
		Outcome:  m.InstallFailed,
		Duration: 1234 * time.Millisecond,
		Conflicts: m.ConflictReport{
			"urllib3": {"requests 2.31.0 requires urllib3 <1.27 but resolved urllib3==2.0.0"},
		},
	})
	ui.Close()
	ui.Wait()

	want := "Analyzing 3 packages with 2 worker(s)\n" +
		"Analyzing requests for python...\n" +
		"Found 2 versions: 2.30.0, 2.31.0\n" +
		"Testing requests 2.31.0...\n" +
		"requests 2.31.0 failed to install [1.2s]\n" +
		"Dependency conflicts detected:\n" +
		"  - urllib3:\n" +
		"    requests 2.31.0 requires urllib3 <1.27 but resolved urllib3==2.0.0\n"

	assert.Equal(t, want, progress.String())
	assert.Empty(t, out.String(), "progress must not reach stdout")
}

func TestSimpleUI_SingleModeStartIsQuiet(t *testing.T) {
	cmd, _, progress := newTestCommand()
	ui := NewSimpleUI(cmd, FormatTable)

	require.NoError(t, ui.Start(WithSingleMode()))
	assert.Empty(t, progress.String())
}

func TestSimpleUI_DisplayReport(t *testing.T) {
	cmd, out, progress := newTestCommand()
	ui := NewSimpleUI(cmd, adapter.FormatJSON)

	require.NoError(t, ui.DisplayReport(sampleReport()))
	assert.JSONEq(t, sampleReportJSON, out.String())
	assert.Empty(t, progress.String())
}

func TestSimpleUI_DisplayAggregate(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd, adapter.FormatJSON)

	reports := m.AggregateReport{
		"requests": sampleReport(),
		"ghost":    noVersionsReport(),
	}

	require.NoError(t, ui.DisplayAggregate(reports))
	assert.JSONEq(t, `{
		"requests": `+sampleReportJSON+`,
		"ghost": {"status": "no_versions", "message": "ghost: no versions found"}
	}`, out.String())
}
