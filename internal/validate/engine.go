// Package validate is the multi-dataset validation engine: structural
// schema checks, cross-dataset referential integrity, and
// capacity/concurrency feasibility over phase-indexed resources. A pass
// is a pure function of one snapshot; rerunning it on unchanged input
// produces an identical report.
package validate

import "github.com/asapSAGNIK/Data-Alchemist/internal/domain"

// Run executes a full validation pass over the snapshot. Findings for
// each dataset are ordered structural, then reference, then capacity;
// within a category, row order is preserved. Nothing short-circuits: a
// bad row degrades to findings and every other check still runs.
func Run(snap domain.Snapshot) domain.Report {
	report := domain.NewReport()
	report.Append(SchemaErrors(snap))
	report.Append(ReferenceErrors(snap))
	report.Append(CapacityErrors(snap))
	return report
}
