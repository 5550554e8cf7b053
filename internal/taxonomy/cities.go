package taxonomy

import (
	"github.com/activity-import-service/internal/domain"
	"github.com/activity-import-service/internal/pkg/errors"
)

// cityCoordinates scopes provider queries and geofence checks. Radii are
// tuned per metro area, in meters.
var cityCoordinates = map[string]domain.CityPoint{
	"New York":      {Lat: 40.7128, Lon: -74.0060, RadiusM: 25000},
	"Los Angeles":   {Lat: 34.0522, Lon: -118.2437, RadiusM: 30000},
	"Chicago":       {Lat: 41.8781, Lon: -87.6298, RadiusM: 20000},
	"Houston":       {Lat: 29.7604, Lon: -95.3698, RadiusM: 25000},
	"Phoenix":       {Lat: 33.4484, Lon: -112.0740, RadiusM: 20000},
	"Philadelphia":  {Lat: 39.9526, Lon: -75.1652, RadiusM: 15000},
	"San Antonio":   {Lat: 29.4241, Lon: -98.4936, RadiusM: 15000},
	"San Diego":     {Lat: 32.7157, Lon: -117.1611, RadiusM: 20000},
	"Dallas":        {Lat: 32.7767, Lon: -96.7970, RadiusM: 20000},
	"Austin":        {Lat: 30.2672, Lon: -97.7431, RadiusM: 15000},
	"Washington":    {Lat: 38.9072, Lon: -77.0369, RadiusM: 25000},
	"Jacksonville":  {Lat: 30.3322, Lon: -81.6557, RadiusM: 15000},
	"Fort Worth":    {Lat: 32.7555, Lon: -97.3308, RadiusM: 15000},
	"Columbus":      {Lat: 39.9612, Lon: -82.9988, RadiusM: 15000},
	"Charlotte":     {Lat: 35.2271, Lon: -80.8431, RadiusM: 15000},
	"San Francisco": {Lat: 37.7749, Lon: -122.4194, RadiusM: 15000},
	"Indianapolis":  {Lat: 39.7684, Lon: -86.1581, RadiusM: 15000},
	"Seattle":       {Lat: 47.6062, Lon: -122.3321, RadiusM: 15000},
	"Denver":        {Lat: 39.7392, Lon: -104.9903, RadiusM: 15000},
	"Boston":        {Lat: 42.3601, Lon: -71.0589, RadiusM: 15000},
	"El Paso":       {Lat: 31.7619, Lon: -106.4850, RadiusM: 15000},
	"Detroit":       {Lat: 42.3314, Lon: -83.0458, RadiusM: 15000},
	"Nashville":     {Lat: 36.1627, Lon: -86.7816, RadiusM: 15000},
	"Portland":      {Lat: 45.5152, Lon: -122.6784, RadiusM: 15000},
	"Memphis":       {Lat: 35.1495, Lon: -90.0490, RadiusM: 15000},
	"Oklahoma City": {Lat: 35.4676, Lon: -97.5164, RadiusM: 15000},
}

// CoordinatesFor resolves a city name to its search center.
func CoordinatesFor(city string) (domain.CityPoint, error) {
	point, ok := cityCoordinates[city]
	if !ok {
		return domain.CityPoint{}, errors.ErrUnknownCity.WithDetails(map[string]interface{}{
			"city": city,
		})
	}
	return point, nil
}
