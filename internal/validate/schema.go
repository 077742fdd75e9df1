package validate

import (
	"fmt"
	"strings"

	"github.com/asapSAGNIK/Data-Alchemist/internal/domain"
	"github.com/asapSAGNIK/Data-Alchemist/internal/normalize"
)

// SchemaErrors runs the per-dataset structural checks: required columns,
// primary-key uniqueness, and per-field domain checks. Checks are
// independent; a single row can contribute several findings and no check
// stops at the first failure.
func SchemaErrors(snap domain.Snapshot) []domain.ValidationError {
	var errs []domain.ValidationError
	errs = append(errs, clientSchemaErrors(snap)...)
	errs = append(errs, workerSchemaErrors(snap)...)
	errs = append(errs, taskSchemaErrors(snap)...)
	return errs
}

func clientSchemaErrors(snap domain.Snapshot) []domain.ValidationError {
	errs := columnErrors(snap, domain.DatasetClients)

	keys := make([]keyedRow, len(snap.Clients))
	for i, c := range snap.Clients {
		keys[i] = keyedRow{index: i, key: c.ClientID}
	}
	errs = append(errs, keyErrors(domain.DatasetClients, "ClientID", keys)...)

	for i, c := range snap.Clients {
		row := domain.RowRef{Index: i, Key: c.ClientID}
		if c.PriorityLevel < 1 || c.PriorityLevel > 5 {
			errs = append(errs, structural(domain.DatasetClients, row,
				fmt.Sprintf("PriorityLevel %d is out of range (must be 1-5)", c.PriorityLevel)))
		}
		if err := normalize.CheckJSON(c.AttributesJSON); err != nil {
			errs = append(errs, structural(domain.DatasetClients, row,
				fmt.Sprintf("AttributesJSON: %v", err)))
		}
	}
	return errs
}

func workerSchemaErrors(snap domain.Snapshot) []domain.ValidationError {
	errs := columnErrors(snap, domain.DatasetWorkers)

	keys := make([]keyedRow, len(snap.Workers))
	for i, w := range snap.Workers {
		keys[i] = keyedRow{index: i, key: w.WorkerID}
	}
	errs = append(errs, keyErrors(domain.DatasetWorkers, "WorkerID", keys)...)

	for i, w := range snap.Workers {
		row := domain.RowRef{Index: i, Key: w.WorkerID}
		if _, err := normalize.PhaseSet(w.AvailableSlots); err != nil {
			errs = append(errs, structural(domain.DatasetWorkers, row,
				fmt.Sprintf("AvailableSlots: %v", err)))
		}
		if w.MaxLoadPerPhase < 0 {
			errs = append(errs, structural(domain.DatasetWorkers, row,
				fmt.Sprintf("MaxLoadPerPhase %d is out of range (must be >= 0)", w.MaxLoadPerPhase)))
		}
	}
	return errs
}

func taskSchemaErrors(snap domain.Snapshot) []domain.ValidationError {
	errs := columnErrors(snap, domain.DatasetTasks)

	keys := make([]keyedRow, len(snap.Tasks))
	for i, t := range snap.Tasks {
		keys[i] = keyedRow{index: i, key: t.TaskID}
	}
	errs = append(errs, keyErrors(domain.DatasetTasks, "TaskID", keys)...)

	for i, t := range snap.Tasks {
		row := domain.RowRef{Index: i, Key: t.TaskID}
		if t.Duration < 1 {
			errs = append(errs, structural(domain.DatasetTasks, row,
				fmt.Sprintf("Duration %d is out of range (must be >= 1)", t.Duration)))
		}
		if _, err := normalize.PhaseSet(t.PreferredPhases); err != nil {
			errs = append(errs, structural(domain.DatasetTasks, row,
				fmt.Sprintf("PreferredPhases: %v", err)))
		}
		if t.MaxConcurrent < 1 {
			errs = append(errs, structural(domain.DatasetTasks, row,
				fmt.Sprintf("MaxConcurrent %d is out of range (must be >= 1)", t.MaxConcurrent)))
		}
	}
	return errs
}

// columnErrors checks that every required column appears in the captured
// header row. All missing names are folded into one finding. Datasets
// built in memory carry no headers and are skipped.
func columnErrors(snap domain.Snapshot, kind domain.DatasetKind) []domain.ValidationError {
	headers, ok := snap.Headers[kind]
	if !ok || headers == nil {
		return nil
	}
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[strings.TrimSpace(h)] = true
	}
	var missing []string
	for _, col := range domain.RequiredColumns[kind] {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return []domain.ValidationError{structural(kind, domain.DatasetRef,
		fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")))}
}

type keyedRow struct {
	index int
	key   string
}

// keyErrors reports empty primary keys per row, and one finding per key
// value that occurs more than once (emitted at the first repeat, so the
// output order is stable).
func keyErrors(kind domain.DatasetKind, field string, rows []keyedRow) []domain.ValidationError {
	var errs []domain.ValidationError
	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		key := strings.TrimSpace(r.key)
		if key == "" {
			errs = append(errs, structural(kind, domain.RowRef{Index: r.index},
				fmt.Sprintf("%s is required", field)))
			continue
		}
		counts[key]++
		if counts[key] == 2 {
			errs = append(errs, structural(kind, domain.DatasetRef,
				fmt.Sprintf("duplicate %s %q", field, key)))
		}
	}
	return errs
}

func structural(kind domain.DatasetKind, row domain.RowRef, msg string) domain.ValidationError {
	return domain.ValidationError{
		Dataset:  kind,
		Row:      row,
		Category: domain.CategoryStructural,
		Message:  msg,
	}
}
