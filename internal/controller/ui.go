// Package controller renders bisection progress and results.
package controller

import (
	m "github.com/mouse-blink/dtm/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeSingle StartMode = iota
	ModeAggregate
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode     StartMode
	packages int
	workers  int
}

// WithSingleMode sets the UI to analyze one package.
func WithSingleMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSingle
		c.packages = 1
		c.workers = 1
	}
}

// WithAggregateMode sets the UI to analyze packages across workers.
func WithAggregateMode(packages, workers int) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeAggregate
		c.packages = packages
		c.workers = workers
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeSingle, packages: 1, workers: 1}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI receives progress while packages are bisected and renders results.
// Progress methods may be called from several goroutines.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish rendering progress
	DisplayAnalysisStart(pkg string, eco m.Ecosystem, versions m.VersionList)
	DisplayProbeStarted(pkg string, index int, version m.Version)
	DisplayProbeFinished(pkg string, probe m.Probe)
	DisplayReport(report m.PackageReport) error
	DisplayAggregate(reports m.AggregateReport) error
}
