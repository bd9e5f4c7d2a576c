package controller

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/dtm/internal/model"
)

const timeRounding = 100 * time.Millisecond

// SimpleUI prints progress lines to the command's stderr and results to its
// stdout.
type SimpleUI struct {
	cmd    *cobra.Command
	format string
	mu     sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, format string) *SimpleUI {
	return &SimpleUI{cmd: cmd, format: format}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)
	if cfg.mode == ModeAggregate {
		s.progressf("Analyzing %d packages with %d worker(s)\n", cfg.packages, cfg.workers)
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; plain output needs no draining.
func (s *SimpleUI) Wait() {}

// DisplayAnalysisStart announces the candidate versions of a package.
func (s *SimpleUI) DisplayAnalysisStart(pkg string, eco m.Ecosystem, versions m.VersionList) {
	s.progressf("Analyzing %s for %s...\nFound %d versions: %s\n",
		pkg, eco, len(versions), strings.Join(versions.Strings(), ", "))
}

// DisplayProbeStarted announces a version about to be installed and tested.
func (s *SimpleUI) DisplayProbeStarted(pkg string, _ int, version m.Version) {
	s.progressf("Testing %s %s...\n", pkg, version)
}

// DisplayProbeFinished reports a probe outcome and any conflicts it found.
func (s *SimpleUI) DisplayProbeFinished(pkg string, probe m.Probe) {
	var b strings.Builder

	b.WriteString(probeLine(pkg, probe))
	b.WriteString("\n")

	if !probe.Conflicts.Empty() {
		b.WriteString("Dependency conflicts detected:\n")

		for _, dep := range probe.Conflicts.Dependencies() {
			fmt.Fprintf(&b, "  - %s:\n", dep)

			for _, issue := range probe.Conflicts[dep] {
				fmt.Fprintf(&b, "    %s\n", issue)
			}
		}
	}

	s.progressf("%s", b.String())
}

// DisplayReport writes the result of a single package to stdout.
func (s *SimpleUI) DisplayReport(report m.PackageReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return RenderReport(s.cmd.OutOrStdout(), s.format, report)
}

// DisplayAggregate writes every package result to stdout.
func (s *SimpleUI) DisplayAggregate(reports m.AggregateReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return RenderAggregate(s.cmd.OutOrStdout(), s.format, reports)
}

func (s *SimpleUI) progressf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
