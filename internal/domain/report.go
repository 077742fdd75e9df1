package domain

import "fmt"

// RowRef addresses the row an error belongs to: its position in the
// dataset plus the external key, when the row has one.
type RowRef struct {
	Index int    `json:"index"`
	Key   string `json:"key,omitempty"`
}

func (r RowRef) String() string {
	if r.Key != "" {
		return fmt.Sprintf("row %d (%s)", r.Index, r.Key)
	}
	return fmt.Sprintf("row %d", r.Index)
}

// ValidationError is one finding against one row (or against the dataset
// as a whole, with Row.Index = -1).
type ValidationError struct {
	Dataset  DatasetKind   `json:"dataset"`
	Row      RowRef        `json:"row"`
	Category ErrorCategory `json:"category"`
	Message  string        `json:"message"`
}

// DatasetRef is the Row value used for dataset-level findings such as
// missing columns.
var DatasetRef = RowRef{Index: -1}

// Report maps each dataset to its ordered findings. Within a dataset the
// order is structural, then reference, then capacity; within a category,
// row order. Errors are append-only during a pass.
type Report map[DatasetKind][]ValidationError

// NewReport returns an empty report with no keys allocated.
func NewReport() Report {
	return make(Report, len(AllDatasets))
}

// Add appends one finding to the dataset's list.
func (r Report) Add(e ValidationError) {
	r[e.Dataset] = append(r[e.Dataset], e)
}

// Append appends findings in order.
func (r Report) Append(errs []ValidationError) {
	for _, e := range errs {
		r.Add(e)
	}
}

// Clone returns a deep copy of the report.
func (r Report) Clone() Report {
	out := make(Report, len(r))
	for kind, errs := range r {
		out[kind] = append([]ValidationError(nil), errs...)
	}
	return out
}

// OK reports whether no dataset has any finding. An empty report is the
// sole success signal.
func (r Report) OK() bool {
	for _, errs := range r {
		if len(errs) > 0 {
			return false
		}
	}
	return true
}

// Total returns the number of findings across all datasets.
func (r Report) Total() int {
	n := 0
	for _, errs := range r {
		n += len(errs)
	}
	return n
}

// CountByCategory tallies findings for one dataset by category.
func (r Report) CountByCategory(kind DatasetKind) map[ErrorCategory]int {
	counts := make(map[ErrorCategory]int, len(AllCategories))
	for _, e := range r[kind] {
		counts[e.Category]++
	}
	return counts
}
