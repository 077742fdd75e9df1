package service

import (
	"encoding/json"
	"fmt"

	"github.com/asapSAGNIK/Data-Alchemist/internal/domain"
	"github.com/asapSAGNIK/Data-Alchemist/internal/normalize"
)

// Export is the scheduler feed: the three datasets with every
// semi-structured cell replaced by its canonical form. It is only
// produced from snapshots that passed validation.
type Export struct {
	Clients []ExportClient `json:"clients"`
	Workers []ExportWorker `json:"workers"`
	Tasks   []ExportTask   `json:"tasks"`
}

type ExportClient struct {
	ClientID         string          `json:"client_id"`
	ClientName       string          `json:"client_name"`
	PriorityLevel    int             `json:"priority_level"`
	RequestedTaskIDs []string        `json:"requested_task_ids"`
	GroupTag         string          `json:"group_tag"`
	Attributes       json.RawMessage `json:"attributes,omitempty"`
}

type ExportWorker struct {
	WorkerID           string   `json:"worker_id"`
	WorkerName         string   `json:"worker_name"`
	Skills             []string `json:"skills"`
	AvailableSlots     []int    `json:"available_slots"`
	MaxLoadPerPhase    int      `json:"max_load_per_phase"`
	WorkerGroup        string   `json:"worker_group"`
	QualificationLevel string   `json:"qualification_level"`
}

type ExportTask struct {
	TaskID          string   `json:"task_id"`
	TaskName        string   `json:"task_name"`
	Category        string   `json:"category"`
	Duration        int      `json:"duration"`
	RequiredSkills  []string `json:"required_skills"`
	PreferredPhases []int    `json:"preferred_phases"`
	MaxConcurrent   int      `json:"max_concurrent"`
}

// BuildExport normalizes a snapshot into the scheduler feed. Callers
// gate on an empty validation report first; a cell that still fails to
// normalize is an error, not a silent drop.
func BuildExport(snap domain.Snapshot) (*Export, error) {
	out := &Export{
		Clients: make([]ExportClient, 0, len(snap.Clients)),
		Workers: make([]ExportWorker, 0, len(snap.Workers)),
		Tasks:   make([]ExportTask, 0, len(snap.Tasks)),
	}

	for _, c := range snap.Clients {
		ec := ExportClient{
			ClientID:         c.ClientID,
			ClientName:       c.ClientName,
			PriorityLevel:    c.PriorityLevel,
			RequestedTaskIDs: normalize.SplitList(c.RequestedTaskIDs),
			GroupTag:         c.GroupTag,
		}
		if err := normalize.CheckJSON(c.AttributesJSON); err != nil {
			return nil, fmt.Errorf("client %s: %w", c.ClientID, err)
		}
		if c.AttributesJSON != "" {
			ec.Attributes = json.RawMessage(c.AttributesJSON)
		}
		out.Clients = append(out.Clients, ec)
	}

	for _, w := range snap.Workers {
		slots, err := normalize.PhaseSet(w.AvailableSlots)
		if err != nil {
			return nil, fmt.Errorf("worker %s: AvailableSlots: %w", w.WorkerID, err)
		}
		out.Workers = append(out.Workers, ExportWorker{
			WorkerID:           w.WorkerID,
			WorkerName:         w.WorkerName,
			Skills:             normalize.SplitSet(w.Skills),
			AvailableSlots:     slots,
			MaxLoadPerPhase:    w.MaxLoadPerPhase,
			WorkerGroup:        w.WorkerGroup,
			QualificationLevel: w.QualificationLevel,
		})
	}

	for _, t := range snap.Tasks {
		phases, err := normalize.PhaseSet(t.PreferredPhases)
		if err != nil {
			return nil, fmt.Errorf("task %s: PreferredPhases: %w", t.TaskID, err)
		}
		out.Tasks = append(out.Tasks, ExportTask{
			TaskID:          t.TaskID,
			TaskName:        t.TaskName,
			Category:        t.Category,
			Duration:        t.Duration,
			RequiredSkills:  normalize.SplitList(t.RequiredSkills),
			PreferredPhases: phases,
			MaxConcurrent:   t.MaxConcurrent,
		})
	}

	return out, nil
}
