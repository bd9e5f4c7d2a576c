package model

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Confidence qualifies how much a bisection boundary can be trusted.
type Confidence string

// Available Confidence values.
const (
	ConfidenceHigh Confidence = "high"
	ConfidenceLow  Confidence = "low"
)

// BisectionResult is the regression boundary found for one package.
type BisectionResult struct {
	// Total is the number of versions that were bisected.
	Total int
	// LatestWorking is the newest version observed to pass, if any.
	LatestWorking *Version
	// FirstBroken is the oldest version observed to fail after LatestWorking, if any.
	FirstBroken *Version
	// LatestWorkingIndex and FirstBrokenIndex locate the boundary; -1 when unset.
	LatestWorkingIndex int
	FirstBrokenIndex   int
	// Conflicts is the most recent non-empty diagnosis gathered along the way.
	Conflicts ConflictReport
	// Probes is the ordered probe history.
	Probes []Probe
	// Interrupted is set when cancellation stopped the search early.
	Interrupted bool
}

// NewBisectionResult returns an empty result over total versions.
func NewBisectionResult(total int) BisectionResult {
	return BisectionResult{
		Total:              total,
		LatestWorkingIndex: -1,
		FirstBrokenIndex:   -1,
	}
}

// Gap counts versions adjacent to the boundary that no probe examined and
// that could still contradict it.
func (r BisectionResult) Gap() int {
	switch {
	case r.LatestWorkingIndex >= 0 && r.FirstBrokenIndex >= 0:
		return r.FirstBrokenIndex - r.LatestWorkingIndex - 1
	case r.LatestWorkingIndex >= 0:
		return r.Total - 1 - r.LatestWorkingIndex
	case r.FirstBrokenIndex >= 0:
		return r.FirstBrokenIndex
	default:
		return r.Total
	}
}

// Confident reports whether the boundary was established with no unexamined
// versions between its sides.
func (r BisectionResult) Confident() bool {
	return len(r.Probes) > 0 && r.Gap() == 0
}

// Confidence maps Confident to a label.
func (r BisectionResult) Confidence() Confidence {
	if r.Confident() {
		return ConfidenceHigh
	}

	return ConfidenceLow
}

// Record is the per-package result document produced for the reporting layer.
type Record struct {
	Package             string         `json:"package" yaml:"package"`
	Language            Ecosystem      `json:"language" yaml:"language"`
	LatestWorking       *Version       `json:"latest_working" yaml:"latest_working"`
	FirstBroken         *Version       `json:"first_broken" yaml:"first_broken"`
	DependencyConflicts ConflictReport `json:"dependency_conflicts" yaml:"dependency_conflicts"`
	TotalVersions       int            `json:"total_versions" yaml:"total_versions"`
	Probes              int            `json:"probes" yaml:"probes"`
	Confidence          Confidence     `json:"confidence" yaml:"confidence"`
	Interrupted         bool           `json:"interrupted,omitempty" yaml:"interrupted,omitempty"`
}

// NewRecord builds the result document for a finished bisection.
func NewRecord(pkg string, eco Ecosystem, res BisectionResult) Record {
	var conflicts ConflictReport
	if !res.Conflicts.Empty() {
		conflicts = res.Conflicts
	}

	return Record{
		Package:             pkg,
		Language:            eco,
		LatestWorking:       res.LatestWorking,
		FirstBroken:         res.FirstBroken,
		DependencyConflicts: conflicts,
		TotalVersions:       res.Total,
		Probes:              len(res.Probes),
		Confidence:          res.Confidence(),
		Interrupted:         res.Interrupted,
	}
}

// Report statuses used in place of a Record.
const (
	StatusOK         = "ok"
	StatusError      = "error"
	StatusNoVersions = "no_versions"
)

// ErrorRecord replaces a Record when a package could not be analyzed.
type ErrorRecord struct {
	Status  string `json:"status" yaml:"status"`
	Message string `json:"message" yaml:"message"`
}

// PackageReport is the outcome of analyzing one package: either a Record or
// an error explaining why there is none.
type PackageReport struct {
	Package   string
	Ecosystem Ecosystem
	Record    *Record
	Result    *BisectionResult
	Err       error
}

// Status classifies the report.
func (p PackageReport) Status() string {
	switch {
	case p.Err == nil:
		return StatusOK
	case errors.Is(p.Err, ErrNoVersions):
		return StatusNoVersions
	default:
		return StatusError
	}
}

// Document returns what gets serialized for this report.
func (p PackageReport) Document() any {
	if p.Err == nil && p.Record != nil {
		return p.Record
	}

	msg := "no record produced"
	if p.Err != nil {
		msg = p.Err.Error()
	}

	return ErrorRecord{Status: p.Status(), Message: msg}
}

// MarshalJSON renders the Record or the ErrorRecord.
func (p PackageReport) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Document())
}

// MarshalYAML renders the Record or the ErrorRecord.
func (p PackageReport) MarshalYAML() (any, error) {
	return p.Document(), nil
}

// AggregateReport holds one PackageReport per analyzed package, keyed by
// package name.
type AggregateReport map[string]PackageReport

// Failed counts reports whose status is not ok.
func (a AggregateReport) Failed() int {
	n := 0

	for _, r := range a {
		if r.Status() != StatusOK {
			n++
		}
	}

	return n
}
