package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/activity-import-service/internal/domain"
	"github.com/activity-import-service/internal/domain/repository"
)

type statsRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStatsRepository(db *DB) repository.StatsRepository {
	return &statsRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// InsertRunStats appends one log row for a finished run. The table is
// append-only: rows are never updated.
func (r *statsRepository) InsertRunStats(ctx context.Context, stats *domain.ImportStats) error {
	cityBreakdown, err := json.Marshal(stats.CityBreakdown)
	if err != nil {
		return fmt.Errorf("marshal city breakdown: %w", err)
	}
	categoryBreakdown, err := json.Marshal(stats.CategoryBreakdown)
	if err != nil {
		return fmt.Errorf("marshal category breakdown: %w", err)
	}

	query := `
		INSERT INTO import_stats (
			run_id, total_imported, successful, failed,
			city_breakdown, category_breakdown
		) VALUES ($1, $2, $3, $4, $5, $6)
	`

	if _, err := r.db.ExecContext(ctx, query,
		stats.RunID,
		stats.TotalImported,
		stats.Successful,
		stats.Failed,
		cityBreakdown,
		categoryBreakdown,
	); err != nil {
		r.logger.Error("Failed to insert import stats",
			zap.String("run_id", stats.RunID),
			zap.Error(err))
		return fmt.Errorf("insert import stats: %w", err)
	}

	return nil
}

// GetRecentRuns returns the latest run rows, newest first.
func (r *statsRepository) GetRecentRuns(ctx context.Context, limit int) ([]domain.ImportStats, error) {
	query := `
		SELECT id, run_id, total_imported, successful, failed,
		       city_breakdown, category_breakdown, created_at
		FROM import_stats
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		r.logger.Error("Failed to query import stats", zap.Error(err))
		return nil, fmt.Errorf("query import stats: %w", err)
	}
	defer rows.Close()

	var runs []domain.ImportStats
	for rows.Next() {
		var s domain.ImportStats
		var cityJSON, categoryJSON []byte

		if err := rows.Scan(
			&s.ID, &s.RunID, &s.TotalImported, &s.Successful, &s.Failed,
			&cityJSON, &categoryJSON, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan import stats: %w", err)
		}

		if len(cityJSON) > 0 {
			if err := json.Unmarshal(cityJSON, &s.CityBreakdown); err != nil {
				r.logger.Warn("Failed to unmarshal city breakdown",
					zap.String("run_id", s.RunID), zap.Error(err))
			}
		}
		if len(categoryJSON) > 0 {
			if err := json.Unmarshal(categoryJSON, &s.CategoryBreakdown); err != nil {
				r.logger.Warn("Failed to unmarshal category breakdown",
					zap.String("run_id", s.RunID), zap.Error(err))
			}
		}

		runs = append(runs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("import stats rows error: %w", err)
	}

	return runs, nil
}
