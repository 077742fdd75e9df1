// Package importer reads the clients/workers/tasks datasets from CSV
// files into domain records. Cells stay raw strings wherever the
// validation engine normalizes them itself; numeric columns are parsed
// here, with unparseable cells coerced to an out-of-domain sentinel so
// the schema pass reports the row instead of ingestion aborting.
package importer

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/asapSAGNIK/Data-Alchemist/internal/domain"
	"github.com/google/uuid"
)

// row is one data record paired with the header-indexed cell lookup.
type row struct {
	headers []string
	cells   []string
	index   map[string]int
}

func (r row) cell(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

// extra collects cells under headers outside the known column set.
func (r row) extra(known map[string]bool) map[string]string {
	var out map[string]string
	for i, h := range r.headers {
		if known[h] || i >= len(r.cells) {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[h] = strings.TrimSpace(r.cells[i])
	}
	return out
}

// readFile parses a CSV file into header names and data rows. Ragged
// rows are tolerated; missing trailing cells read as empty.
func readFile(path string) ([]string, []row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return []string{}, nil, nil
	}

	headers := make([]string, len(records[0]))
	index := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		h = strings.TrimSpace(h)
		headers[i] = h
		index[h] = i
	}

	rows := make([]row, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, row{headers: headers, cells: rec, index: index})
	}
	return headers, rows, nil
}

// intCell parses an integer cell. Empty or unparseable cells coerce to
// sentinel, which callers pick from outside the field's valid domain.
func intCell(raw string, sentinel int) int {
	if raw == "" {
		return sentinel
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return sentinel
	}
	return n
}

func knownColumns(kind domain.DatasetKind) map[string]bool {
	known := make(map[string]bool)
	for _, c := range domain.RequiredColumns[kind] {
		known[c] = true
	}
	return known
}

// LoadClients reads the clients dataset, returning rows and the header
// names found in the file.
func LoadClients(path string) ([]domain.ClientRecord, []string, error) {
	headers, rows, err := readFile(path)
	if err != nil {
		return nil, nil, err
	}
	known := knownColumns(domain.DatasetClients)

	clients := make([]domain.ClientRecord, 0, len(rows))
	for _, r := range rows {
		clients = append(clients, domain.ClientRecord{
			ID:               uuid.New().String(),
			ClientID:         r.cell("ClientID"),
			ClientName:       r.cell("ClientName"),
			PriorityLevel:    intCell(r.cell("PriorityLevel"), 0),
			RequestedTaskIDs: r.cell("RequestedTaskIDs"),
			GroupTag:         r.cell("GroupTag"),
			AttributesJSON:   r.cell("AttributesJSON"),
			Extra:            r.extra(known),
		})
	}
	return clients, headers, nil
}

// LoadWorkers reads the workers dataset.
func LoadWorkers(path string) ([]domain.WorkerRecord, []string, error) {
	headers, rows, err := readFile(path)
	if err != nil {
		return nil, nil, err
	}
	known := knownColumns(domain.DatasetWorkers)

	workers := make([]domain.WorkerRecord, 0, len(rows))
	for _, r := range rows {
		workers = append(workers, domain.WorkerRecord{
			ID:                 uuid.New().String(),
			WorkerID:           r.cell("WorkerID"),
			WorkerName:         r.cell("WorkerName"),
			Skills:             r.cell("Skills"),
			AvailableSlots:     r.cell("AvailableSlots"),
			MaxLoadPerPhase:    intCell(r.cell("MaxLoadPerPhase"), -1),
			WorkerGroup:        r.cell("WorkerGroup"),
			QualificationLevel: r.cell("QualificationLevel"),
			Extra:              r.extra(known),
		})
	}
	return workers, headers, nil
}

// LoadTasks reads the tasks dataset.
func LoadTasks(path string) ([]domain.TaskRecord, []string, error) {
	headers, rows, err := readFile(path)
	if err != nil {
		return nil, nil, err
	}
	known := knownColumns(domain.DatasetTasks)

	tasks := make([]domain.TaskRecord, 0, len(rows))
	for _, r := range rows {
		tasks = append(tasks, domain.TaskRecord{
			ID:              uuid.New().String(),
			TaskID:          r.cell("TaskID"),
			TaskName:        r.cell("TaskName"),
			Category:        r.cell("Category"),
			Duration:        intCell(r.cell("Duration"), 0),
			RequiredSkills:  r.cell("RequiredSkills"),
			PreferredPhases: r.cell("PreferredPhases"),
			MaxConcurrent:   intCell(r.cell("MaxConcurrent"), 0),
			Extra:           r.extra(known),
		})
	}
	return tasks, headers, nil
}

// LoadSnapshot reads all three datasets into one snapshot. Any path may
// be empty, leaving that dataset unloaded.
func LoadSnapshot(clientsPath, workersPath, tasksPath string) (domain.Snapshot, error) {
	snap := domain.Snapshot{Headers: make(map[domain.DatasetKind][]string)}

	if clientsPath != "" {
		clients, headers, err := LoadClients(clientsPath)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("loading clients: %w", err)
		}
		snap.Clients = clients
		snap.Headers[domain.DatasetClients] = headers
	}
	if workersPath != "" {
		workers, headers, err := LoadWorkers(workersPath)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("loading workers: %w", err)
		}
		snap.Workers = workers
		snap.Headers[domain.DatasetWorkers] = headers
	}
	if tasksPath != "" {
		tasks, headers, err := LoadTasks(tasksPath)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("loading tasks: %w", err)
		}
		snap.Tasks = tasks
		snap.Headers[domain.DatasetTasks] = headers
	}
	return snap, nil
}
