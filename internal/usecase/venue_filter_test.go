package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activity-import-service/internal/domain"
	"github.com/activity-import-service/internal/taxonomy"
	"github.com/activity-import-service/internal/usecase"
)

func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }

// nyCenter matches the New York search center used in production.
var nyCenter = domain.CityPoint{Lat: 40.7128, Lon: -74.0060, RadiusM: 25000}

func goodVenue(id, name string, rating float64, reviews int) domain.Venue {
	return domain.Venue{
		FsqID:       id,
		Name:        name,
		Description: "preschool program for children",
		Location: domain.VenueLocation{
			Latitude:  ptrFloat64(40.7200),
			Longitude: ptrFloat64(-74.0000),
		},
		Rating: ptrFloat64(rating),
		Stats:  &domain.VenueStats{TotalRatings: reviews},
	}
}

func preschoolConfig(t *testing.T) *taxonomy.CategoryConfig {
	t.Helper()
	cfg, err := taxonomy.ConfigFor("preschool")
	require.NoError(t, err)
	return cfg
}

func TestFilterVenues_QualityGates(t *testing.T) {
	cfg := preschoolConfig(t)

	t.Run("rating below threshold is rejected", func(t *testing.T) {
		venues := []domain.Venue{goodVenue("v1", "Bright Kids Preschool", 3.9, 50)}
		result := usecase.FilterVenues(venues, nyCenter, cfg, 10)
		assert.Empty(t, result)
	})

	t.Run("missing rating is rejected", func(t *testing.T) {
		v := goodVenue("v1", "Bright Kids Preschool", 4.5, 50)
		v.Rating = nil
		result := usecase.FilterVenues([]domain.Venue{v}, nyCenter, cfg, 10)
		assert.Empty(t, result)
	})

	t.Run("review count below threshold is rejected", func(t *testing.T) {
		venues := []domain.Venue{goodVenue("v1", "Bright Kids Preschool", 4.5, 9)}
		result := usecase.FilterVenues(venues, nyCenter, cfg, 10)
		assert.Empty(t, result)
	})

	t.Run("missing stats counts as zero reviews", func(t *testing.T) {
		v := goodVenue("v1", "Bright Kids Preschool", 4.5, 50)
		v.Stats = nil
		result := usecase.FilterVenues([]domain.Venue{v}, nyCenter, cfg, 10)
		assert.Empty(t, result)
	})

	t.Run("venue at exact thresholds passes", func(t *testing.T) {
		venues := []domain.Venue{goodVenue("v1", "Bright Kids Preschool", 4.0, 10)}
		result := usecase.FilterVenues(venues, nyCenter, cfg, 10)
		assert.Len(t, result, 1)
	})
}

func TestFilterVenues_Geofence(t *testing.T) {
	cfg := preschoolConfig(t)

	t.Run("venue outside the radius is rejected", func(t *testing.T) {
		v := goodVenue("v1", "Far Away Preschool", 4.8, 100)
		// Philadelphia, well outside the 25 km New York radius
		v.Location.Latitude = ptrFloat64(39.9526)
		v.Location.Longitude = ptrFloat64(-75.1652)

		result := usecase.FilterVenues([]domain.Venue{v}, nyCenter, cfg, 10)
		assert.Empty(t, result)
	})

	t.Run("venue without coordinates passes the geofence", func(t *testing.T) {
		v := goodVenue("v1", "Somewhere Preschool", 4.8, 100)
		v.Location.Latitude = nil
		v.Location.Longitude = nil

		result := usecase.FilterVenues([]domain.Venue{v}, nyCenter, cfg, 10)
		assert.Len(t, result, 1)
	})
}

func TestFilterVenues_Relevance(t *testing.T) {
	cfg := preschoolConfig(t)

	t.Run("venue without category keywords is rejected", func(t *testing.T) {
		v := goodVenue("v1", "Joe's Pizza", 4.8, 100)
		v.Description = "best pizza for the whole family"
		result := usecase.FilterVenues([]domain.Venue{v}, nyCenter, cfg, 10)
		assert.Empty(t, result)
	})

	t.Run("adult keyword disqualifies outright", func(t *testing.T) {
		v := goodVenue("v1", "Montessori Preschool & Wine Bar", 4.8, 100)
		result := usecase.FilterVenues([]domain.Venue{v}, nyCenter, cfg, 10)
		assert.Empty(t, result)
	})

	t.Run("keyword match via provider category name counts", func(t *testing.T) {
		v := goodVenue("v1", "Little Sprouts", 4.8, 100)
		v.Description = ""
		v.Categories = []domain.VenueCategory{{ID: 12058, Name: "Preschool"}}
		result := usecase.FilterVenues([]domain.Venue{v}, nyCenter, cfg, 10)
		assert.Len(t, result, 1)
	})

	t.Run("kid-friendly keyword is required", func(t *testing.T) {
		v := goodVenue("v1", "Montessori Institute", 4.8, 100)
		// montessori matches the category keywords but nothing in the
		// kid-friendly list
		v.Description = "montessori method certification courses for educators"
		result := usecase.FilterVenues([]domain.Venue{v}, nyCenter, cfg, 10)
		assert.Empty(t, result)
	})
}

func TestFilterVenues_Ranking(t *testing.T) {
	cfg := preschoolConfig(t)

	t.Run("higher weighted score ranks first", func(t *testing.T) {
		// 4.2 * ln(1+500) > 4.9 * ln(1+12)
		busy := goodVenue("busy", "Busy Bees Preschool", 4.2, 500)
		boutique := goodVenue("boutique", "Boutique Preschool", 4.9, 12)

		result := usecase.FilterVenues([]domain.Venue{boutique, busy}, nyCenter, cfg, 10)
		require.Len(t, result, 2)
		assert.Equal(t, "busy", result[0].FsqID)
		assert.Equal(t, "boutique", result[1].FsqID)
	})

	t.Run("equal scores keep input order", func(t *testing.T) {
		a := goodVenue("a", "Alpha Preschool", 4.5, 100)
		b := goodVenue("b", "Beta Preschool", 4.5, 100)

		result := usecase.FilterVenues([]domain.Venue{a, b}, nyCenter, cfg, 10)
		require.Len(t, result, 2)
		assert.Equal(t, "a", result[0].FsqID)
		assert.Equal(t, "b", result[1].FsqID)
	})

	t.Run("result is truncated to limit", func(t *testing.T) {
		venues := []domain.Venue{
			goodVenue("v1", "One Preschool", 4.5, 100),
			goodVenue("v2", "Two Preschool", 4.6, 100),
			goodVenue("v3", "Three Preschool", 4.7, 100),
		}
		result := usecase.FilterVenues(venues, nyCenter, cfg, 2)
		assert.Len(t, result, 2)
	})

	t.Run("zero limit means unlimited", func(t *testing.T) {
		venues := []domain.Venue{
			goodVenue("v1", "One Preschool", 4.5, 100),
			goodVenue("v2", "Two Preschool", 4.6, 100),
		}
		result := usecase.FilterVenues(venues, nyCenter, cfg, 0)
		assert.Len(t, result, 2)
	})
}
