// Package diagnose extracts structured dependency conflicts from the free-form
// diagnostics printed by package managers when an install fails.
//
// Extraction is best-effort pattern matching. Text with no recognizable
// structure yields a *model.DiagnosisError, which callers treat as "no report"
// rather than a failure.
package diagnose

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/dtm/internal/model"
)

// Diagnoser turns install diagnostics into a ConflictReport.
type Diagnoser interface {
	Diagnose(text string) (m.ConflictReport, error)
}

// parseFunc feeds recognized clashes from cleaned lines into report.
type parseFunc func(lines []string, report m.ConflictReport)

type patternDiagnoser struct {
	parse parseFunc
}

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// For returns the diagnoser for an ecosystem, or nil when there is none.
func For(eco m.Ecosystem) Diagnoser {
	switch eco {
	case m.Python:
		return &patternDiagnoser{parse: parsePip}
	case m.JavaScript:
		return &patternDiagnoser{parse: parseNpm}
	case m.Rust:
		return &patternDiagnoser{parse: parseCargo}
	case m.Go:
		return &patternDiagnoser{parse: parseGo}
	default:
		return nil
	}
}

// Diagnose is a shorthand for For(eco).Diagnose(text).
func Diagnose(eco m.Ecosystem, text string) (m.ConflictReport, error) {
	d := For(eco)
	if d == nil {
		return nil, &m.DiagnosisError{Reason: "no patterns for ecosystem " + string(eco)}
	}

	return d.Diagnose(text)
}

func (d *patternDiagnoser) Diagnose(text string) (m.ConflictReport, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &m.DiagnosisError{Reason: "empty diagnostics"}
	}

	report := m.ConflictReport{}
	d.parse(splitLines(text), report)

	if report.Empty() {
		return nil, &m.DiagnosisError{Reason: "no conflict pattern matched"}
	}

	return report, nil
}

func splitLines(text string) []string {
	text = ansiEscape.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))

	for _, line := range raw {
		lines = append(lines, strings.TrimRight(line, " \t"))
	}

	return lines
}
