package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/activity-import-service/internal/pkg/errors"
)

func TestConfigFor(t *testing.T) {
	t.Run("resolves canonical key", func(t *testing.T) {
		cfg, err := ConfigFor("preschool")
		require.NoError(t, err)
		assert.Equal(t, "preschool", cfg.Key)
		assert.NotEmpty(t, cfg.Queries)
		assert.NotEmpty(t, cfg.Keywords)
	})

	t.Run("resolves legacy aliases", func(t *testing.T) {
		cases := map[string]string{
			"preschools":   "preschool",
			"after-school": "after_school_academic",
			"summer-camps": "summer_camp_traditional",
		}
		for alias, canonical := range cases {
			cfg, err := ConfigFor(alias)
			require.NoError(t, err, alias)
			assert.Equal(t, canonical, cfg.Key)
		}
	})

	t.Run("unknown key returns typed error", func(t *testing.T) {
		_, err := ConfigFor("scuba-diving")
		require.Error(t, err)

		appErr, ok := err.(*appErrors.AppError)
		require.True(t, ok)
		assert.Equal(t, "UNKNOWN_CATEGORY", appErr.Code)
		assert.Equal(t, "scuba-diving", appErr.Details["category"])
	})

	t.Run("every config has non-empty default age groups", func(t *testing.T) {
		for _, key := range Categories() {
			cfg, err := ConfigFor(key)
			require.NoError(t, err)
			assert.NotEmpty(t, cfg.DefaultAgeGroups, "category %s", key)
			assert.NotEmpty(t, cfg.PlaceCategoryIDs, "category %s", key)
			assert.NotEmpty(t, cfg.Themes, "category %s", key)
		}
	})
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory("daycare"))
	assert.True(t, IsValidCategory("preschools")) // alias
	assert.True(t, IsValidCategory("sports-fitness"))
	assert.False(t, IsValidCategory("nightlife"))
	assert.False(t, IsValidCategory(""))
}

func TestCategories(t *testing.T) {
	keys := Categories()
	assert.Len(t, keys, 13)
	assert.IsIncreasing(t, keys)

	// Aliases must not leak into the canonical list
	assert.NotContains(t, keys, "preschools")
	assert.NotContains(t, keys, "after-school")
	assert.NotContains(t, keys, "summer-camps")
}

func TestCoordinatesFor(t *testing.T) {
	t.Run("known city", func(t *testing.T) {
		point, err := CoordinatesFor("New York")
		require.NoError(t, err)
		assert.InDelta(t, 40.7128, point.Lat, 0.001)
		assert.InDelta(t, -74.0060, point.Lon, 0.001)
		assert.Equal(t, 25000.0, point.RadiusM)
	})

	t.Run("unknown city returns typed error", func(t *testing.T) {
		_, err := CoordinatesFor("Atlantis")
		require.Error(t, err)

		appErr, ok := err.(*appErrors.AppError)
		require.True(t, ok)
		assert.Equal(t, "UNKNOWN_CITY", appErr.Code)
		assert.Equal(t, "Atlantis", appErr.Details["city"])
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		_, err := CoordinatesFor("new york")
		assert.Error(t, err)
	})
}
