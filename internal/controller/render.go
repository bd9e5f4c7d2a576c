package controller

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/mouse-blink/dtm/internal/adapter"
	m "github.com/mouse-blink/dtm/internal/model"
)

// FormatTable renders human-readable tables instead of a document.
const FormatTable = "table"

// ErrUnknownFormat is returned for output formats other than json, yaml and table.
var ErrUnknownFormat = errors.New("unknown output format")

// ValidFormat reports whether format can be rendered.
func ValidFormat(format string) bool {
	switch format {
	case adapter.FormatJSON, adapter.FormatYAML, FormatTable:
		return true
	default:
		return false
	}
}

// UpgradeHint returns the command that installs v of pkg in eco.
func UpgradeHint(eco m.Ecosystem, pkg string, v m.Version) string {
	switch eco {
	case m.JavaScript:
		return fmt.Sprintf("npm install %s@%s", pkg, v)
	case m.Rust:
		return fmt.Sprintf("cargo add %s@%s", pkg, v)
	case m.Go:
		return fmt.Sprintf("go get %s@%s", pkg, v)
	default:
		return fmt.Sprintf("pip install %s==%s", pkg, v)
	}
}

// RenderReport writes a single package report to w.
func RenderReport(w io.Writer, format string, report m.PackageReport) error {
	if format != FormatTable {
		return renderDocument(w, format, report)
	}

	if report.Record == nil || report.Err != nil {
		doc, _ := report.Document().(m.ErrorRecord)
		msg := strings.TrimPrefix(doc.Message, report.Package+": ")
		_, err := fmt.Fprintf(w, "%s: %s (%s)\n", report.Package, msg, doc.Status)

		return err
	}

	rec := report.Record

	table := newTable(w)
	table.SetHeader([]string{"Field", "Value"})
	table.AppendBulk([][]string{
		{"Package", rec.Package},
		{"Language", rec.Language.String()},
		{"Latest working", versionCell(rec.LatestWorking)},
		{"First broken", versionCell(rec.FirstBroken)},
		{"Total versions", fmt.Sprintf("%d", rec.TotalVersions)},
		{"Probes", fmt.Sprintf("%d", rec.Probes)},
		{"Confidence", string(rec.Confidence)},
	})

	if rec.Interrupted {
		table.Append([]string{"Interrupted", "yes"})
	}

	table.Render()

	if !rec.DependencyConflicts.Empty() {
		if _, err := fmt.Fprintln(w, "\nDependency conflicts:"); err != nil {
			return err
		}

		conflicts := newTable(w)
		conflicts.SetHeader([]string{"Dependency", "Issue"})

		for _, dep := range rec.DependencyConflicts.Dependencies() {
			for _, issue := range rec.DependencyConflicts[dep] {
				conflicts.Append([]string{dep, issue})
			}
		}

		conflicts.Render()
	}

	if rec.LatestWorking != nil {
		_, err := fmt.Fprintf(w, "\nUpgrade hint: %s\n", UpgradeHint(rec.Language, rec.Package, *rec.LatestWorking))

		return err
	}

	return nil
}

// RenderAggregate writes one entry per package to w.
func RenderAggregate(w io.Writer, format string, reports m.AggregateReport) error {
	if format != FormatTable {
		return renderDocument(w, format, reports)
	}

	names := make([]string, 0, len(reports))
	for name := range reports {
		names = append(names, name)
	}

	sort.Strings(names)

	table := newTable(w)
	table.SetHeader([]string{"Package", "Status", "Latest working", "First broken", "Probes", "Confidence"})

	for _, name := range names {
		report := reports[name]
		if report.Record == nil || report.Err != nil {
			table.Append([]string{name, report.Status(), "-", "-", "-", "-"})

			continue
		}

		rec := report.Record
		table.Append([]string{
			name,
			report.Status(),
			versionCell(rec.LatestWorking),
			versionCell(rec.FirstBroken),
			fmt.Sprintf("%d", rec.Probes),
			string(rec.Confidence),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(reports)), fmt.Sprintf("Failed %d", reports.Failed()), "", "", "", ""})
	table.Render()

	return nil
}

func renderDocument(w io.Writer, format string, doc any) error {
	if !ValidFormat(format) {
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}

	out, err := adapter.EncodeDocument(format, doc)
	if err != nil {
		return err
	}

	_, err = w.Write(out)

	return err
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table
}

func versionCell(v *m.Version) string {
	if v == nil {
		return "-"
	}

	return v.String()
}

// probeLine describes a finished probe in one line.
func probeLine(pkg string, probe m.Probe) string {
	var b strings.Builder

	switch probe.Outcome {
	case m.TestsPassed:
		fmt.Fprintf(&b, "%s %s works", pkg, probe.Version)
	case m.TestsFailed:
		fmt.Fprintf(&b, "%s %s failed tests", pkg, probe.Version)
	default:
		fmt.Fprintf(&b, "%s %s failed to install", pkg, probe.Version)
	}

	switch {
	case probe.TimedOut():
		b.WriteString(" (timed out)")
	case probe.ExecutionFailed():
		b.WriteString(" (test command could not run)")
	}

	fmt.Fprintf(&b, " [%s]", probe.Duration.Round(timeRounding))

	return b.String()
}
