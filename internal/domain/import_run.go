package domain

import "time"

// ImportRunResult accumulates across all (city, category) pairs of one
// import invocation. Immutable once the orchestrator returns it.
type ImportRunResult struct {
	Total      int               `json:"total"`
	Successful int               `json:"successful"`
	Failed     int               `json:"failed"`
	Venues     []ClassifiedVenue `json:"venues"`
	Errors     []string          `json:"errors"`
}

// ImportStats is one append-only log row per import run. Never updated
// after insert.
type ImportStats struct {
	ID                int64          `json:"id" db:"id"`
	RunID             string         `json:"run_id" db:"run_id"`
	TotalImported     int            `json:"total_imported" db:"total_imported"`
	Successful        int            `json:"successful" db:"successful"`
	Failed            int            `json:"failed" db:"failed"`
	CityBreakdown     map[string]int `json:"city_breakdown" db:"-"`
	CategoryBreakdown map[string]int `json:"category_breakdown" db:"-"`
	CreatedAt         time.Time      `json:"created_at" db:"created_at"`
}
