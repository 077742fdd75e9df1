package repository

import (
	"context"
	"time"

	"github.com/asapSAGNIK/Data-Alchemist/internal/domain"
)

// RunTrigger records what caused a validation pass.
type RunTrigger string

const (
	TriggerLoad       RunTrigger = "load"
	TriggerEdit       RunTrigger = "edit"
	TriggerCorrection RunTrigger = "correction"
	TriggerManual     RunTrigger = "manual"
)

// Run is one persisted validation pass: when it ran, over how many rows,
// and the full report it produced.
type Run struct {
	ID         string
	CreatedAt  time.Time
	Trigger    RunTrigger
	ClientRows int
	WorkerRows int
	TaskRows   int
	Report     domain.Report
}

// RunSummary is the list view of a run, without the findings themselves.
type RunSummary struct {
	ID         string
	CreatedAt  time.Time
	Trigger    RunTrigger
	ClientRows int
	WorkerRows int
	TaskRows   int
	ErrorCount int
}

// RunRepo persists validation runs for the history/audit view.
type RunRepo interface {
	Save(ctx context.Context, run *Run) error
	Get(ctx context.Context, id string) (*Run, error)
	List(ctx context.Context, limit int) ([]RunSummary, error)
}
