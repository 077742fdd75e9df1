package domain

// Snapshot is a point-in-time copy of all three datasets, plus the raw
// column headers captured at ingest. A validation pass reads exactly one
// Snapshot and never mutates it.
type Snapshot struct {
	Clients []ClientRecord
	Workers []WorkerRecord
	Tasks   []TaskRecord

	// Headers maps each dataset to the column names of its source file.
	// A nil entry means the dataset was built in memory rather than
	// ingested from a delimited file, so there is no header row to check.
	Headers map[DatasetKind][]string
}

// Clone returns a deep copy, safe to hand to a validation pass while the
// caller keeps editing the original.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{}
	if s.Clients != nil {
		out.Clients = make([]ClientRecord, len(s.Clients))
		for i, c := range s.Clients {
			out.Clients[i] = c.Clone()
		}
	}
	if s.Workers != nil {
		out.Workers = make([]WorkerRecord, len(s.Workers))
		for i, w := range s.Workers {
			out.Workers[i] = w.Clone()
		}
	}
	if s.Tasks != nil {
		out.Tasks = make([]TaskRecord, len(s.Tasks))
		for i, t := range s.Tasks {
			out.Tasks[i] = t.Clone()
		}
	}
	if s.Headers != nil {
		out.Headers = make(map[DatasetKind][]string, len(s.Headers))
		for kind, cols := range s.Headers {
			out.Headers[kind] = append([]string(nil), cols...)
		}
	}
	return out
}

// RowCount returns the number of rows in the named dataset.
func (s Snapshot) RowCount(kind DatasetKind) int {
	switch kind {
	case DatasetClients:
		return len(s.Clients)
	case DatasetWorkers:
		return len(s.Workers)
	case DatasetTasks:
		return len(s.Tasks)
	}
	return 0
}
