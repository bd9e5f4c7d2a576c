package controller

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/dtm/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	installStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// packageState is what the progress view knows about one package.
type packageState struct {
	versions int
	probes   int
	current  m.Version
	active   bool
}

// progressModel shows a spinner per package under bisection and prints
// finished probes above it.
type progressModel struct {
	cfg      StartConfig
	spinner  spinner.Model
	packages map[string]*packageState
	finished int
	quitting bool
}

func newProgressModel(cfg StartConfig) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = titleStyle

	return progressModel{cfg: cfg, spinner: s, packages: map[string]*packageState{}}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisStartMsg:
		pm.state(msg.pkg).versions = msg.versions

		return pm, tea.Println(dimStyle.Render(fmt.Sprintf("%s (%s): %d versions", msg.pkg, msg.eco, msg.versions)))
	case probeStartedMsg:
		st := pm.state(msg.pkg)
		st.current = msg.version
		st.active = true

		return pm, nil
	case probeFinishedMsg:
		st := pm.state(msg.pkg)
		st.probes++
		st.active = false
		pm.finished++

		return pm, tea.Println(styleProbe(msg.probe).Render(probeLine(msg.pkg, msg.probe)))
	case doneMsg:
		pm.quitting = true

		return pm, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm progressModel) View() string {
	if pm.quitting {
		return ""
	}

	names := make([]string, 0, len(pm.packages))
	for name, st := range pm.packages {
		if st.active {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	var b strings.Builder

	header := fmt.Sprintf("Bisecting (%d probes finished)", pm.finished)
	if pm.cfg.mode == ModeAggregate {
		header = fmt.Sprintf("Bisecting %d packages with %d worker(s), %d probes finished",
			pm.cfg.packages, pm.cfg.workers, pm.finished)
	}

	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")

	for _, name := range names {
		st := pm.packages[name]
		fmt.Fprintf(&b, "%s %s %s %s\n", pm.spinner.View(), name, st.current,
			dimStyle.Render(fmt.Sprintf("probe %d of %d versions", st.probes+1, st.versions)))
	}

	return b.String()
}

func (pm progressModel) state(pkg string) *packageState {
	st, ok := pm.packages[pkg]
	if !ok {
		st = &packageState{}
		pm.packages[pkg] = st
	}

	return st
}

func styleProbe(probe m.Probe) lipgloss.Style {
	switch probe.Outcome {
	case m.TestsPassed:
		return passStyle
	case m.TestsFailed:
		return failStyle
	default:
		return installStyle
	}
}
