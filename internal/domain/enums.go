package domain

type DatasetKind string

const (
	DatasetClients DatasetKind = "clients"
	DatasetWorkers DatasetKind = "workers"
	DatasetTasks   DatasetKind = "tasks"
)

// AllDatasets lists dataset kinds in canonical display/merge order.
var AllDatasets = []DatasetKind{DatasetClients, DatasetWorkers, DatasetTasks}

type ErrorCategory string

const (
	CategoryStructural ErrorCategory = "structural"
	CategoryReference  ErrorCategory = "reference"
	CategoryCapacity   ErrorCategory = "capacity"
)

// AllCategories lists error categories in detection order.
var AllCategories = []ErrorCategory{CategoryStructural, CategoryReference, CategoryCapacity}

// RequiredColumns is the canonical required-column set per dataset,
// matched against the headers of an ingested delimited file.
var RequiredColumns = map[DatasetKind][]string{
	DatasetClients: {"ClientID", "ClientName", "PriorityLevel", "RequestedTaskIDs", "GroupTag", "AttributesJSON"},
	DatasetWorkers: {"WorkerID", "WorkerName", "Skills", "AvailableSlots", "MaxLoadPerPhase", "WorkerGroup", "QualificationLevel"},
	DatasetTasks:   {"TaskID", "TaskName", "Category", "Duration", "RequiredSkills", "PreferredPhases", "MaxConcurrent"},
}
