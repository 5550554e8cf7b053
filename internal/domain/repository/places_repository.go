package repository

import (
	"context"

	"github.com/activity-import-service/internal/domain"
)

// PlacesRepository wraps the external places provider.
type PlacesRepository interface {
	// SearchVenues returns candidate venues for a (city, category) pair,
	// deduplicated by external id. limit caps the combined result size
	// across the category's query strings.
	SearchVenues(ctx context.Context, city, category string, limit int) ([]domain.Venue, error)

	// GetVenue fetches a single venue by its external id.
	GetVenue(ctx context.Context, fsqID string) (*domain.Venue, error)
}
