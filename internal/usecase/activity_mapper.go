package usecase

import (
	"encoding/json"
	"strings"

	"github.com/activity-import-service/internal/domain"
)

// ConvertVenueToActivity maps a classified venue onto the persisted
// activity row for the resolved city.
func ConvertVenueToActivity(cv domain.ClassifiedVenue, cityID int64) domain.Activity {
	activity := domain.Activity{
		Name:           cv.Name,
		Description:    cv.Description,
		Category:       cv.SourceCategory,
		Themes:         cv.Themes,
		AgeGroups:      ageGroupStrings(cv.AgeGroups),
		MinAgeMonths:   domain.MinAgeMonths(cv.AgeGroups),
		MaxAgeMonths:   domain.MaxAgeMonths(cv.AgeGroups),
		Address:        venueAddress(cv.Venue),
		CityID:         cityID,
		Latitude:       cv.Location.Latitude,
		Longitude:      cv.Location.Longitude,
		Phone:          optional(cv.Tel),
		Email:          optional(cv.Email),
		Website:        optional(cv.Website),
		Rating:         cv.Rating,
		ReviewCount:    cv.TotalRatings(),
		Amenities:      extractAmenities(cv.Venue),
		Languages:      cv.Languages,
		ReligiousAffil: cv.ReligiousAffiliation,
		Accreditation:  []string{},
		FoursquareID:   cv.FsqID,
		Featured:       false,
		Verified:       false,
	}

	if len(cv.Categories) > 0 {
		activity.Subcategory = optional(cv.Categories[0].Name)
	}

	// Price tier 1-4 becomes a repeated currency symbol.
	if cv.Price != nil && *cv.Price > 0 {
		activity.PriceRange = optional(strings.Repeat("$", *cv.Price))
	}

	if cv.Hours != nil {
		if raw, err := json.Marshal(cv.Hours); err == nil {
			activity.Hours = optional(string(raw))
		}
	}

	return activity
}

func venueAddress(v domain.Venue) string {
	if v.Location.FormattedAddress != "" {
		return v.Location.FormattedAddress
	}
	return v.Location.Address
}

func extractAmenities(v domain.Venue) []string {
	amenities := []string{}
	if v.Features == nil {
		return amenities
	}
	if a := v.Features.Amenities; a != nil {
		if a.Parking {
			amenities = append(amenities, "Parking")
		}
		if a.WiFi {
			amenities = append(amenities, "WiFi")
		}
		if a.Restroom {
			amenities = append(amenities, "Restroom")
		}
	}
	if p := v.Features.Payment; p != nil && p.CreditCards != nil && p.CreditCards.AcceptsCreditCards {
		amenities = append(amenities, "Credit Cards Accepted")
	}
	return amenities
}

func ageGroupStrings(groups []domain.AgeGroup) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = string(g)
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
