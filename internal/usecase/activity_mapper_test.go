package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activity-import-service/internal/domain"
	"github.com/activity-import-service/internal/usecase"
)

func classifiedVenue() domain.ClassifiedVenue {
	return domain.ClassifiedVenue{
		Venue: domain.Venue{
			FsqID:       "fsq123",
			Name:        "Bright Kids Preschool",
			Description: "montessori preschool",
			Location: domain.VenueLocation{
				Address:          "123 Main St",
				FormattedAddress: "123 Main St, New York, NY 10001",
				Latitude:         ptrFloat64(40.72),
				Longitude:        ptrFloat64(-74.0),
			},
			Categories: []domain.VenueCategory{
				{ID: 12058, Name: "Preschool"},
				{ID: 12059, Name: "Daycare"},
			},
			Rating:  ptrFloat64(4.5),
			Stats:   &domain.VenueStats{TotalRatings: 120},
			Price:   ptrInt(3),
			Website: "https://brightkids.example.com",
			Tel:     "(212) 555-0100",
		},
		Themes:         []string{"Montessori"},
		AgeGroups:      []domain.AgeGroup{domain.AgeToddlers, domain.AgePreschool},
		Languages:      []string{"English"},
		SourceCategory: "preschools",
		SourceCity:     "New York",
	}
}

func TestConvertVenueToActivity(t *testing.T) {
	t.Run("maps core fields", func(t *testing.T) {
		a := usecase.ConvertVenueToActivity(classifiedVenue(), 7)

		assert.Equal(t, "Bright Kids Preschool", a.Name)
		assert.Equal(t, "preschools", a.Category)
		assert.Equal(t, int64(7), a.CityID)
		assert.Equal(t, "fsq123", a.FoursquareID)
		assert.Equal(t, "123 Main St, New York, NY 10001", a.Address)
		assert.Equal(t, 120, a.ReviewCount)
		assert.False(t, a.Featured)
		assert.False(t, a.Verified)

		require.NotNil(t, a.Subcategory)
		assert.Equal(t, "Preschool", *a.Subcategory)

		require.NotNil(t, a.Phone)
		assert.Equal(t, "(212) 555-0100", *a.Phone)
	})

	t.Run("age bounds derive from detected groups", func(t *testing.T) {
		a := usecase.ConvertVenueToActivity(classifiedVenue(), 7)
		require.NotNil(t, a.MinAgeMonths)
		require.NotNil(t, a.MaxAgeMonths)
		assert.Equal(t, 12, *a.MinAgeMonths)
		assert.Equal(t, 60, *a.MaxAgeMonths)
	})

	t.Run("price tier becomes dollar signs", func(t *testing.T) {
		a := usecase.ConvertVenueToActivity(classifiedVenue(), 7)
		require.NotNil(t, a.PriceRange)
		assert.Equal(t, "$$$", *a.PriceRange)
	})

	t.Run("missing price yields nil range", func(t *testing.T) {
		cv := classifiedVenue()
		cv.Price = nil
		a := usecase.ConvertVenueToActivity(cv, 7)
		assert.Nil(t, a.PriceRange)
	})

	t.Run("formatted address falls back to street address", func(t *testing.T) {
		cv := classifiedVenue()
		cv.Location.FormattedAddress = ""
		a := usecase.ConvertVenueToActivity(cv, 7)
		assert.Equal(t, "123 Main St", a.Address)
	})

	t.Run("empty contact fields stay nil", func(t *testing.T) {
		cv := classifiedVenue()
		cv.Tel = ""
		cv.Email = ""
		cv.Website = ""
		cv.Categories = nil
		a := usecase.ConvertVenueToActivity(cv, 7)
		assert.Nil(t, a.Phone)
		assert.Nil(t, a.Email)
		assert.Nil(t, a.Website)
		assert.Nil(t, a.Subcategory)
	})

	t.Run("amenities come from provider features", func(t *testing.T) {
		cv := classifiedVenue()
		cv.Features = &domain.VenueFeatures{
			Amenities: &domain.VenueAmenities{Parking: true, WiFi: true},
			Payment: &domain.VenuePayment{
				CreditCards: &domain.VenueCreditCards{AcceptsCreditCards: true},
			},
		}
		a := usecase.ConvertVenueToActivity(cv, 7)
		assert.ElementsMatch(t,
			[]string{"Parking", "WiFi", "Credit Cards Accepted"},
			[]string(a.Amenities))
	})

	t.Run("no features yields empty amenities", func(t *testing.T) {
		a := usecase.ConvertVenueToActivity(classifiedVenue(), 7)
		assert.Empty(t, a.Amenities)
	})

	t.Run("hours serialize to json", func(t *testing.T) {
		cv := classifiedVenue()
		cv.Hours = &domain.VenueHours{Display: "Mon-Fri 8:00-18:00"}
		a := usecase.ConvertVenueToActivity(cv, 7)
		require.NotNil(t, a.Hours)
		assert.Contains(t, *a.Hours, "Mon-Fri 8:00-18:00")
	})
}
