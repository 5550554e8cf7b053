package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistanceMeters(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		d := HaversineDistanceMeters(40.7128, -74.0060, 40.7128, -74.0060)
		assert.Equal(t, 0.0, d)
	})

	t.Run("known distance NYC to Philadelphia", func(t *testing.T) {
		// Roughly 130 km between the two city centers
		d := HaversineDistanceMeters(40.7128, -74.0060, 39.9526, -75.1652)
		assert.InDelta(t, 130000, d, 2000)
	})

	t.Run("short distance within a city", func(t *testing.T) {
		// Times Square to Central Park south edge, ~1.2 km
		d := HaversineDistanceMeters(40.7580, -73.9855, 40.7644, -73.9735)
		assert.Greater(t, d, 1000.0)
		assert.Less(t, d, 1500.0)
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := HaversineDistanceMeters(41.8781, -87.6298, 34.0522, -118.2437)
		d2 := HaversineDistanceMeters(34.0522, -118.2437, 41.8781, -87.6298)
		assert.InDelta(t, d1, d2, 0.001)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(40.7128, -74.0060))
	assert.True(t, ValidateCoordinates(-90, 180))
	assert.True(t, ValidateCoordinates(0, 0))
	assert.False(t, ValidateCoordinates(91, 0))
	assert.False(t, ValidateCoordinates(-91, 0))
	assert.False(t, ValidateCoordinates(0, 181))
	assert.False(t, ValidateCoordinates(0, -181))
}
