package domain

import "github.com/google/uuid"

// Stream names shared between the API and the import worker.
const (
	StreamImportJobs = "stream:import:jobs"
	StreamImportDone = "stream:import:done"
)

// ImportJob is an asynchronous import request carried over the job stream.
type ImportJob struct {
	JobID          uuid.UUID `json:"job_id"`
	Cities         []string  `json:"cities"`
	Categories     []string  `json:"categories"`
	MaxPerCategory int       `json:"max_per_category,omitempty"`
}

// ImportDoneEvent reports the outcome of an asynchronous import run.
type ImportDoneEvent struct {
	JobID              uuid.UUID `json:"job_id"`
	TotalFound         int       `json:"total_found"`
	ActivitiesInserted int       `json:"activities_inserted"`
	FailedPairs        int       `json:"failed_pairs"`
	Error              string    `json:"error,omitempty"`
}

// StreamMessage is a raw message read from a Redis stream.
type StreamMessage struct {
	ID   string
	Data string
}
