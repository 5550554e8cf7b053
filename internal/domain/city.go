package domain

import "time"

// City is a row of the static city reference table. Looked up by name
// when resolving which city an imported venue belongs to.
type City struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	State     string    `json:"state" db:"state"`
	Lat       float64   `json:"lat" db:"lat"`
	Lon       float64   `json:"lon" db:"lon"`
	RadiusM   float64   `json:"radius_m" db:"radius_m"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CityPoint is a static search center: coordinates plus the geofence
// radius in meters used for provider queries and boundary checks.
type CityPoint struct {
	Lat     float64
	Lon     float64
	RadiusM float64
}
