package controller

import (
	m "github.com/mouse-blink/dtm/internal/model"
)

// Message types.
type analysisStartMsg struct {
	pkg      string
	eco      m.Ecosystem
	versions int
}

type probeStartedMsg struct {
	pkg     string
	index   int
	version m.Version
}

type probeFinishedMsg struct {
	pkg   string
	probe m.Probe
}

type doneMsg struct{}
