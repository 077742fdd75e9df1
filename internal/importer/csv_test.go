package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/asapSAGNIK/Data-Alchemist/internal/domain"
	"github.com/asapSAGNIK/Data-Alchemist/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadClients(t *testing.T) {
	path := writeCSV(t, "clients.csv", `ClientID,ClientName,PriorityLevel,RequestedTaskIDs,GroupTag,AttributesJSON,Notes
C1,Acme,3,"T1,T2",alpha,"{""vip"":true}",call back
C2,Globex,5,,beta,,
`)

	clients, headers, err := LoadClients(path)
	require.NoError(t, err)
	assert.Contains(t, headers, "ClientID")
	assert.Contains(t, headers, "Notes")
	require.Len(t, clients, 2)

	c := clients[0]
	assert.Equal(t, "C1", c.ClientID)
	assert.Equal(t, "Acme", c.ClientName)
	assert.Equal(t, 3, c.PriorityLevel)
	assert.Equal(t, "T1,T2", c.RequestedTaskIDs)
	assert.Equal(t, `{"vip":true}`, c.AttributesJSON)
	assert.Equal(t, map[string]string{"Notes": "call back"}, c.Extra)
	assert.NotEmpty(t, c.ID)
	assert.NotEqual(t, clients[0].ID, clients[1].ID)
}

func TestLoadClients_UnparseableNumberFlaggedDownstream(t *testing.T) {
	path := writeCSV(t, "clients.csv", `ClientID,ClientName,PriorityLevel,RequestedTaskIDs,GroupTag,AttributesJSON
C1,Acme,high,,alpha,
`)
	clients, headers, err := LoadClients(path)
	require.NoError(t, err)
	require.Len(t, clients, 1)

	snap := domain.Snapshot{
		Clients: clients,
		Headers: map[domain.DatasetKind][]string{domain.DatasetClients: headers},
	}
	report := validate.Run(snap)
	require.Len(t, report[domain.DatasetClients], 1)
	assert.Contains(t, report[domain.DatasetClients][0].Message, "PriorityLevel")
}

func TestLoadWorkers_RaggedRowsTolerated(t *testing.T) {
	path := writeCSV(t, "workers.csv", `WorkerID,WorkerName,Skills,AvailableSlots,MaxLoadPerPhase,WorkerGroup,QualificationLevel
W1,Ada,"python,go","[1,2,3]",2,core,senior
W2,Alan,python,1-2,1
`)
	workers, _, err := LoadWorkers(path)
	require.NoError(t, err)
	require.Len(t, workers, 2)
	assert.Equal(t, "python,go", workers[0].Skills)
	assert.Equal(t, "[1,2,3]", workers[0].AvailableSlots)
	assert.Equal(t, 2, workers[0].MaxLoadPerPhase)
	assert.Equal(t, "", workers[1].WorkerGroup)
}

func TestLoadTasks(t *testing.T) {
	path := writeCSV(t, "tasks.csv", `TaskID,TaskName,Category,Duration,RequiredSkills,PreferredPhases,MaxConcurrent
T1,Ingest,etl,2,python,1-3,2
`)
	tasks, _, err := LoadTasks(path)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 2, tasks[0].Duration)
	assert.Equal(t, "1-3", tasks[0].PreferredPhases)
	assert.Equal(t, 2, tasks[0].MaxConcurrent)
}

func TestLoadSnapshot(t *testing.T) {
	clients := writeCSV(t, "clients.csv", "ClientID,ClientName,PriorityLevel,RequestedTaskIDs,GroupTag,AttributesJSON\nC1,Acme,3,T1,alpha,\n")
	workers := writeCSV(t, "workers.csv", "WorkerID,WorkerName,Skills,AvailableSlots,MaxLoadPerPhase,WorkerGroup,QualificationLevel\nW1,Ada,python,1-3,1,core,senior\n")
	tasks := writeCSV(t, "tasks.csv", "TaskID,TaskName,Category,Duration,RequiredSkills,PreferredPhases,MaxConcurrent\nT1,Ingest,etl,1,python,1,1\n")

	snap, err := LoadSnapshot(clients, workers, tasks)
	require.NoError(t, err)
	assert.Len(t, snap.Clients, 1)
	assert.Len(t, snap.Workers, 1)
	assert.Len(t, snap.Tasks, 1)
	assert.Len(t, snap.Headers, 3)
	assert.True(t, validate.Run(snap).OK())
}

func TestLoadSnapshot_OmittedPathLeavesDatasetUnloaded(t *testing.T) {
	tasks := writeCSV(t, "tasks.csv", "TaskID,TaskName,Category,Duration,RequiredSkills,PreferredPhases,MaxConcurrent\nT1,Ingest,etl,1,,1,1\n")

	snap, err := LoadSnapshot("", "", tasks)
	require.NoError(t, err)
	assert.Empty(t, snap.Clients)
	assert.Empty(t, snap.Workers)
	require.Len(t, snap.Tasks, 1)
	_, ok := snap.Headers[domain.DatasetClients]
	assert.False(t, ok)
}

func TestLoadSnapshot_MissingFile(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "absent.csv"), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading clients")
}

func TestLoad_MissingColumnSurfacesAsAggregatedError(t *testing.T) {
	path := writeCSV(t, "clients.csv", "ClientID,ClientName\nC1,Acme\n")
	clients, headers, err := LoadClients(path)
	require.NoError(t, err)

	snap := domain.Snapshot{
		Clients: clients,
		Headers: map[domain.DatasetKind][]string{domain.DatasetClients: headers},
	}
	report := validate.Run(snap)
	errs := report[domain.DatasetClients]

	// One aggregated missing-column finding plus the out-of-range
	// priority the absent column coerced to.
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "missing required columns")
	assert.Contains(t, errs[0].Message, "PriorityLevel")
}
