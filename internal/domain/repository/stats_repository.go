package repository

import (
	"context"

	"github.com/activity-import-service/internal/domain"
)

// StatsRepository writes and reads the append-only import run log.
type StatsRepository interface {
	// InsertRunStats appends one row for a finished import run.
	InsertRunStats(ctx context.Context, stats *domain.ImportStats) error

	// GetRecentRuns returns the latest run rows, newest first.
	GetRecentRuns(ctx context.Context, limit int) ([]domain.ImportStats, error)
}
