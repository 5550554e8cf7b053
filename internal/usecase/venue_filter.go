package usecase

import (
	"math"
	"sort"
	"strings"

	"github.com/activity-import-service/internal/domain"
	"github.com/activity-import-service/internal/pkg/utils"
	"github.com/activity-import-service/internal/taxonomy"
)

// Quality gate thresholds. Venues below either never enter the catalog.
const (
	MinVenueRating = 4.0
	MinReviewCount = 10
)

// FilterVenues applies the quality and relevance gates and returns the
// survivors ranked by composite quality score, truncated to limit.
// Pure: no I/O, input slice is not mutated.
func FilterVenues(venues []domain.Venue, center domain.CityPoint, cfg *taxonomy.CategoryConfig, limit int) []domain.Venue {
	filtered := make([]domain.Venue, 0, len(venues))
	for _, v := range venues {
		if passesQualityGates(v, center, cfg) {
			filtered = append(filtered, v)
		}
	}

	// Stable sort keeps input order for equal scores.
	sort.SliceStable(filtered, func(i, j int) bool {
		return qualityScore(filtered[i]) > qualityScore(filtered[j])
	})

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}

func passesQualityGates(v domain.Venue, center domain.CityPoint, cfg *taxonomy.CategoryConfig) bool {
	if v.Rating == nil || *v.Rating < MinVenueRating {
		return false
	}
	if v.TotalRatings() < MinReviewCount {
		return false
	}

	// Geofence: venues without coordinates pass, they are not rejected.
	if v.HasCoordinates() {
		distance := utils.HaversineDistanceMeters(
			center.Lat, center.Lon,
			*v.Location.Latitude, *v.Location.Longitude,
		)
		if distance > center.RadiusM {
			return false
		}
	}

	text := relevanceText(v)

	if !containsAny(text, cfg.Keywords) {
		return false
	}
	if containsAny(text, taxonomy.AdultKeywords) {
		return false
	}
	if !containsAny(text, taxonomy.KidFriendlyKeywords) {
		return false
	}

	return true
}

// qualityScore ranks a venue by rating weighted with review volume.
func qualityScore(v domain.Venue) float64 {
	rating := 0.0
	if v.Rating != nil {
		rating = *v.Rating
	}
	return rating * math.Log(1+float64(v.TotalRatings()))
}

// relevanceText joins name, description and provider category names,
// lowercased, for keyword matching.
func relevanceText(v domain.Venue) string {
	var b strings.Builder
	b.WriteString(v.Name)
	b.WriteByte(' ')
	b.WriteString(v.Description)
	for _, c := range v.Categories {
		b.WriteByte(' ')
		b.WriteString(c.Name)
	}
	return strings.ToLower(b.String())
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
