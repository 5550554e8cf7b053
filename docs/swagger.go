// Package docs Activity Import Service API.
//
// Service that imports kids' activity venues from the Foursquare Places
// API. Venues are fetched per city and category, filtered for quality
// and relevance, classified into themes, age groups and languages, and
// persisted as activity rows.
//
// Main features:
// - Synchronous and asynchronous venue imports per city and category
// - Quality filtering (rating, review count, geofence) and keyword classification
// - Idempotent persistence keyed by Foursquare venue ID
// - Import run statistics with per-city and per-category breakdowns
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
