package dto

// ImportRequest triggers a synchronous or asynchronous import run.
type ImportRequest struct {
	Cities         []string `json:"cities" validate:"required,min=1,dive,required"`
	Categories     []string `json:"categories" validate:"required,min=1,dive,required"`
	MaxPerCategory int      `json:"maxPerCategory,omitempty" validate:"omitempty,min=1"`
}

// FoursquareResults summarizes the fetch half of a run.
type FoursquareResults struct {
	TotalFound        int      `json:"total_found"`
	SuccessfulFetches int      `json:"successful_fetches"`
	FailedFetches     int      `json:"failed_fetches"`
	FetchErrors       []string `json:"fetch_errors"`
}

// DatabaseResults summarizes the persistence half of a run.
type DatabaseResults struct {
	ActivitiesProcessed int      `json:"activities_processed"`
	ActivitiesInserted  int      `json:"activities_inserted"`
	InsertErrors        []string `json:"insert_errors"`
}

// ImportSummary is the top-line run outcome.
type ImportSummary struct {
	CitiesProcessed      int `json:"cities_processed"`
	CategoriesProcessed  int `json:"categories_processed"`
	TotalActivitiesAdded int `json:"total_activities_added"`
}

// ImportResponse is returned by the synchronous import endpoint. Success
// stays true even when individual pairs or batches failed; the error
// arrays carry the detail.
type ImportResponse struct {
	Success           bool              `json:"success"`
	RunID             string            `json:"run_id"`
	FoursquareResults FoursquareResults `json:"foursquare_results"`
	DatabaseResults   DatabaseResults   `json:"database_results"`
	Summary           ImportSummary     `json:"summary"`
}

// AsyncImportResponse acknowledges a queued import job.
type AsyncImportResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// ImportMetadata describes the import API for discovery.
type ImportMetadata struct {
	Message             string      `json:"message"`
	AvailableCategories []string    `json:"available_categories"`
	Usage               ImportUsage `json:"usage"`
}

type ImportUsage struct {
	Method string        `json:"method"`
	Body   ImportRequest `json:"body"`
}
