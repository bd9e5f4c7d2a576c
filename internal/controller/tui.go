package controller

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/dtm/internal/model"
)

// TUI implements UI using Bubble Tea for interactive progress display.
type TUI struct {
	output   io.Writer
	progress io.Writer
	format   string

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI drawing progress on progress and results on output.
func NewTUI(output, progress io.Writer, format string) *TUI {
	return &TUI{output: output, progress: progress, format: format}
}

// Start launches the progress program in the background.
func (t *TUI) Start(options ...StartOption) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}

	t.program = tea.NewProgram(
		newProgressModel(newStartConfig(options)),
		tea.WithOutput(t.progress),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		if _, err := t.program.Run(); err != nil {
			t.mu.Lock()
			t.err = err
			t.mu.Unlock()
		}
	}()

	return nil
}

// Close asks the progress program to exit.
func (t *TUI) Close() {
	t.send(doneMsg{})
}

// Wait blocks until the progress program has exited.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// DisplayAnalysisStart announces the candidate versions of a package.
func (t *TUI) DisplayAnalysisStart(pkg string, eco m.Ecosystem, versions m.VersionList) {
	t.send(analysisStartMsg{pkg: pkg, eco: eco, versions: len(versions)})
}

// DisplayProbeStarted marks pkg as probing version.
func (t *TUI) DisplayProbeStarted(pkg string, index int, version m.Version) {
	t.send(probeStartedMsg{pkg: pkg, index: index, version: version})
}

// DisplayProbeFinished prints the probe outcome above the spinners.
func (t *TUI) DisplayProbeFinished(pkg string, probe m.Probe) {
	t.send(probeFinishedMsg{pkg: pkg, probe: probe})
}

// DisplayReport writes the result of a single package to the output.
func (t *TUI) DisplayReport(report m.PackageReport) error {
	return RenderReport(t.output, t.format, report)
}

// DisplayAggregate writes every package result to the output.
func (t *TUI) DisplayAggregate(reports m.AggregateReport) error {
	return RenderAggregate(t.output, t.format, reports)
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}
