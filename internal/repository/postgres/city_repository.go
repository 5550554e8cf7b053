package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/activity-import-service/internal/domain"
	"github.com/activity-import-service/internal/domain/repository"
)

type cityRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCityRepository(db *DB) repository.CityRepository {
	return &cityRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// GetByNames returns the city rows matching the given names. Order
// follows the input list so substring resolution stays deterministic.
func (r *cityRepository) GetByNames(ctx context.Context, names []string) ([]domain.City, error) {
	if len(names) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, name, state, lat, lon, radius_m, created_at
		FROM cities
		WHERE name = ANY($1)
		ORDER BY array_position($1, name)
	`

	var cities []domain.City
	if err := r.db.SelectContext(ctx, &cities, query, pq.Array(names)); err != nil {
		r.logger.Error("Failed to get cities by names",
			zap.Strings("names", names),
			zap.Error(err))
		return nil, fmt.Errorf("get cities by names: %w", err)
	}

	return cities, nil
}
