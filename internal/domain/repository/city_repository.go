package repository

import (
	"context"

	"github.com/activity-import-service/internal/domain"
)

// CityRepository reads the static city reference table.
type CityRepository interface {
	// GetByNames returns the cities whose names appear in the given list.
	GetByNames(ctx context.Context, names []string) ([]domain.City, error)
}
