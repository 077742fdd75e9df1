package testutil

import (
	"github.com/asapSAGNIK/Data-Alchemist/internal/domain"
	"github.com/google/uuid"
)

// Client options

type ClientOption func(*domain.ClientRecord)

func WithPriority(p int) ClientOption {
	return func(c *domain.ClientRecord) { c.PriorityLevel = p }
}

func WithRequestedTasks(raw string) ClientOption {
	return func(c *domain.ClientRecord) { c.RequestedTaskIDs = raw }
}

func WithAttributes(raw string) ClientOption {
	return func(c *domain.ClientRecord) { c.AttributesJSON = raw }
}

// NewTestClient builds a valid client row keyed by clientID.
func NewTestClient(clientID string, opts ...ClientOption) domain.ClientRecord {
	c := domain.ClientRecord{
		ID:            uuid.New().String(),
		ClientID:      clientID,
		ClientName:    "Client " + clientID,
		PriorityLevel: 3,
		GroupTag:      "default",
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Worker options

type WorkerOption func(*domain.WorkerRecord)

func WithSkills(raw string) WorkerOption {
	return func(w *domain.WorkerRecord) { w.Skills = raw }
}

func WithSlots(raw string) WorkerOption {
	return func(w *domain.WorkerRecord) { w.AvailableSlots = raw }
}

func WithMaxLoad(n int) WorkerOption {
	return func(w *domain.WorkerRecord) { w.MaxLoadPerPhase = n }
}

// NewTestWorker builds a valid worker row keyed by workerID.
func NewTestWorker(workerID string, opts ...WorkerOption) domain.WorkerRecord {
	w := domain.WorkerRecord{
		ID:                 uuid.New().String(),
		WorkerID:           workerID,
		WorkerName:         "Worker " + workerID,
		Skills:             "general",
		AvailableSlots:     "1-5",
		MaxLoadPerPhase:    2,
		WorkerGroup:        "default",
		QualificationLevel: "junior",
	}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// Task options

type TaskOption func(*domain.TaskRecord)

func WithDuration(n int) TaskOption {
	return func(t *domain.TaskRecord) { t.Duration = n }
}

func WithRequiredSkills(raw string) TaskOption {
	return func(t *domain.TaskRecord) { t.RequiredSkills = raw }
}

func WithPreferredPhases(raw string) TaskOption {
	return func(t *domain.TaskRecord) { t.PreferredPhases = raw }
}

func WithMaxConcurrent(n int) TaskOption {
	return func(t *domain.TaskRecord) { t.MaxConcurrent = n }
}

// NewTestTask builds a valid task row keyed by taskID. The defaults
// require the "general" skill that NewTestWorker provides.
func NewTestTask(taskID string, opts ...TaskOption) domain.TaskRecord {
	t := domain.TaskRecord{
		ID:              uuid.New().String(),
		TaskID:          taskID,
		TaskName:        "Task " + taskID,
		Category:        "default",
		Duration:        1,
		RequiredSkills:  "general",
		PreferredPhases: "1-5",
		MaxConcurrent:   1,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// NewTestSnapshot bundles rows into a snapshot with no header metadata.
func NewTestSnapshot(clients []domain.ClientRecord, workers []domain.WorkerRecord, tasks []domain.TaskRecord) domain.Snapshot {
	return domain.Snapshot{Clients: clients, Workers: workers, Tasks: tasks}
}
