package repository

import (
	"context"

	"github.com/activity-import-service/internal/domain"
)

// ActivityRepository persists imported activities.
type ActivityRepository interface {
	// UpsertBatch inserts a batch of activities, ignoring rows whose
	// foursquare_id already exists. Returns the number of rows actually
	// inserted.
	UpsertBatch(ctx context.Context, activities []domain.Activity) (int, error)
}
