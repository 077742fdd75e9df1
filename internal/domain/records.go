package domain

// ClientRecord is one row of the clients dataset. Semi-structured cells
// (RequestedTaskIDs, AttributesJSON) are kept raw; the validation engine
// normalizes them on each pass so an edited cell never goes stale.
type ClientRecord struct {
	ID               string // stable row handle, survives edits
	ClientID         string
	ClientName       string
	PriorityLevel    int
	RequestedTaskIDs string
	GroupTag         string
	AttributesJSON   string

	// Extra holds columns the importer did not recognize, keyed by header.
	Extra map[string]string
}

// WorkerRecord is one row of the workers dataset.
type WorkerRecord struct {
	ID                 string
	WorkerID           string
	WorkerName         string
	Skills             string
	AvailableSlots     string
	MaxLoadPerPhase    int
	WorkerGroup        string
	QualificationLevel string

	Extra map[string]string
}

// TaskRecord is one row of the tasks dataset.
type TaskRecord struct {
	ID              string
	TaskID          string
	TaskName        string
	Category        string
	Duration        int
	RequiredSkills  string
	PreferredPhases string
	MaxConcurrent   int

	Extra map[string]string
}

func cloneExtra(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Clone returns a deep copy of the record.
func (c ClientRecord) Clone() ClientRecord {
	c.Extra = cloneExtra(c.Extra)
	return c
}

// Clone returns a deep copy of the record.
func (w WorkerRecord) Clone() WorkerRecord {
	w.Extra = cloneExtra(w.Extra)
	return w
}

// Clone returns a deep copy of the record.
func (t TaskRecord) Clone() TaskRecord {
	t.Extra = cloneExtra(t.Extra)
	return t
}
