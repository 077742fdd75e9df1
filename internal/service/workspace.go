// Package service hosts the validation engine: it owns the single
// current snapshot of the three datasets plus the last report, replaces
// both atomically on every mutation, and records each pass in the run
// repository. The engine itself stays a pure function; all state and
// locking live here.
package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/asapSAGNIK/Data-Alchemist/internal/domain"
	"github.com/asapSAGNIK/Data-Alchemist/internal/repository"
	"github.com/asapSAGNIK/Data-Alchemist/internal/validate"
	"github.com/google/uuid"
)

// Workspace holds the current dataset snapshot and the report from the
// last validation pass. All mutations revalidate the full snapshot; a
// pass always sees a consistent point-in-time copy.
type Workspace struct {
	mu     sync.RWMutex
	snap   domain.Snapshot
	report domain.Report

	runs repository.RunRepo // nil disables run persistence
	now  func() time.Time
}

// NewWorkspace creates an empty workspace. runs may be nil, in which
// case passes are not persisted.
func NewWorkspace(runs repository.RunRepo) *Workspace {
	return &Workspace{
		report: domain.NewReport(),
		runs:   runs,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Load replaces the entire snapshot and revalidates. Record identity
// restarts: rows get whatever handles the caller minted.
func (w *Workspace) Load(ctx context.Context, snap domain.Snapshot) (domain.Report, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.snap = snap.Clone()
	return w.revalidate(ctx, repository.TriggerLoad)
}

// ApplyCorrection replaces all three datasets with a candidate
// correction (same row-handle semantics as Load) and revalidates. The
// caller must re-check the returned report before trusting the data.
func (w *Workspace) ApplyCorrection(ctx context.Context, snap domain.Snapshot) (domain.Report, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.snap = snap.Clone()
	return w.revalidate(ctx, repository.TriggerCorrection)
}

// EditCell updates one cell of the row with the given handle and
// revalidates. Unknown columns land in the row's Extra map; integer
// columns that fail to parse coerce out of domain so the pass reports
// them rather than the edit failing.
func (w *Workspace) EditCell(ctx context.Context, kind domain.DatasetKind, rowID, column, value string) (domain.Report, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var found bool
	switch kind {
	case domain.DatasetClients:
		for i := range w.snap.Clients {
			if w.snap.Clients[i].ID == rowID {
				setClientCell(&w.snap.Clients[i], column, value)
				found = true
				break
			}
		}
	case domain.DatasetWorkers:
		for i := range w.snap.Workers {
			if w.snap.Workers[i].ID == rowID {
				setWorkerCell(&w.snap.Workers[i], column, value)
				found = true
				break
			}
		}
	case domain.DatasetTasks:
		for i := range w.snap.Tasks {
			if w.snap.Tasks[i].ID == rowID {
				setTaskCell(&w.snap.Tasks[i], column, value)
				found = true
				break
			}
		}
	default:
		return nil, fmt.Errorf("unknown dataset %q", kind)
	}
	if !found {
		return nil, fmt.Errorf("no %s row with id %q", kind, rowID)
	}
	return w.revalidate(ctx, repository.TriggerEdit)
}

// Validate reruns the engine over the current snapshot without mutating
// anything. Rerunning on unchanged data yields an identical report.
func (w *Workspace) Validate(ctx context.Context) (domain.Report, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.revalidate(ctx, repository.TriggerManual)
}

// Snapshot returns a deep copy of the current datasets.
func (w *Workspace) Snapshot() domain.Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.snap.Clone()
}

// Report returns a deep copy of the last validation report.
func (w *Workspace) Report() domain.Report {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.report.Clone()
}

// revalidate runs the engine over a copy of the current snapshot, swaps
// in the new report, and persists the pass. The returned report is valid
// even when persistence fails; the error covers persistence only.
// Callers hold w.mu.
func (w *Workspace) revalidate(ctx context.Context, trigger repository.RunTrigger) (domain.Report, error) {
	report := validate.Run(w.snap.Clone())
	w.report = report

	if w.runs == nil {
		return report.Clone(), nil
	}
	run := &repository.Run{
		ID:         uuid.New().String(),
		CreatedAt:  w.now(),
		Trigger:    trigger,
		ClientRows: len(w.snap.Clients),
		WorkerRows: len(w.snap.Workers),
		TaskRows:   len(w.snap.Tasks),
		Report:     report,
	}
	if err := w.runs.Save(ctx, run); err != nil {
		return report.Clone(), fmt.Errorf("recording validation run: %w", err)
	}
	return report.Clone(), nil
}

func intOr(value string, sentinel int) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return sentinel
	}
	return n
}

func setClientCell(c *domain.ClientRecord, column, value string) {
	switch column {
	case "ClientID":
		c.ClientID = value
	case "ClientName":
		c.ClientName = value
	case "PriorityLevel":
		c.PriorityLevel = intOr(value, 0)
	case "RequestedTaskIDs":
		c.RequestedTaskIDs = value
	case "GroupTag":
		c.GroupTag = value
	case "AttributesJSON":
		c.AttributesJSON = value
	default:
		if c.Extra == nil {
			c.Extra = make(map[string]string)
		}
		c.Extra[column] = value
	}
}

func setWorkerCell(w *domain.WorkerRecord, column, value string) {
	switch column {
	case "WorkerID":
		w.WorkerID = value
	case "WorkerName":
		w.WorkerName = value
	case "Skills":
		w.Skills = value
	case "AvailableSlots":
		w.AvailableSlots = value
	case "MaxLoadPerPhase":
		w.MaxLoadPerPhase = intOr(value, -1)
	case "WorkerGroup":
		w.WorkerGroup = value
	case "QualificationLevel":
		w.QualificationLevel = value
	default:
		if w.Extra == nil {
			w.Extra = make(map[string]string)
		}
		w.Extra[column] = value
	}
}

func setTaskCell(t *domain.TaskRecord, column, value string) {
	switch column {
	case "TaskID":
		t.TaskID = value
	case "TaskName":
		t.TaskName = value
	case "Category":
		t.Category = value
	case "Duration":
		t.Duration = intOr(value, 0)
	case "RequiredSkills":
		t.RequiredSkills = value
	case "PreferredPhases":
		t.PreferredPhases = value
	case "MaxConcurrent":
		t.MaxConcurrent = intOr(value, 0)
	default:
		if t.Extra == nil {
			t.Extra = make(map[string]string)
		}
		t.Extra[column] = value
	}
}
