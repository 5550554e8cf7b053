package domain

// Venue is the places provider's record for a candidate place. It exists
// only for the duration of a search call and is never persisted as-is.
type Venue struct {
	FsqID       string          `json:"fsq_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Location    VenueLocation   `json:"location"`
	Categories  []VenueCategory `json:"categories"`
	Rating      *float64        `json:"rating,omitempty"`
	Stats       *VenueStats     `json:"stats,omitempty"`
	Hours       *VenueHours     `json:"hours,omitempty"`
	Price       *int            `json:"price,omitempty"`
	Website     string          `json:"website,omitempty"`
	Tel         string          `json:"tel,omitempty"`
	Email       string          `json:"email,omitempty"`
	Features    *VenueFeatures  `json:"features,omitempty"`
}

type VenueLocation struct {
	Address          string   `json:"address,omitempty"`
	Locality         string   `json:"locality,omitempty"`
	Region           string   `json:"region,omitempty"`
	Postcode         string   `json:"postcode,omitempty"`
	Country          string   `json:"country,omitempty"`
	FormattedAddress string   `json:"formatted_address,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
}

type VenueCategory struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	ShortName  string `json:"short_name,omitempty"`
	PluralName string `json:"plural_name,omitempty"`
}

type VenueStats struct {
	TotalPhotos  int `json:"total_photos,omitempty"`
	TotalRatings int `json:"total_ratings,omitempty"`
	TotalTips    int `json:"total_tips,omitempty"`
}

type VenueHours struct {
	Display        string           `json:"display,omitempty"`
	IsLocalHoliday bool             `json:"is_local_holiday,omitempty"`
	OpenNow        bool             `json:"open_now,omitempty"`
	Regular        []VenueHoursSpan `json:"regular,omitempty"`
}

type VenueHoursSpan struct {
	Day   int    `json:"day,omitempty"`
	Open  string `json:"open,omitempty"`
	Close string `json:"close,omitempty"`
}

type VenueFeatures struct {
	Payment   *VenuePayment   `json:"payment,omitempty"`
	Services  *VenueServices  `json:"services,omitempty"`
	Amenities *VenueAmenities `json:"amenities,omitempty"`
}

type VenuePayment struct {
	CreditCards *VenueCreditCards `json:"credit_cards,omitempty"`
}

type VenueCreditCards struct {
	AcceptsCreditCards bool `json:"accepts_credit_cards,omitempty"`
}

type VenueServices struct {
	Delivery bool `json:"delivery,omitempty"`
	Takeout  bool `json:"takeout,omitempty"`
}

type VenueAmenities struct {
	Restroom bool `json:"restroom,omitempty"`
	Parking  bool `json:"parking,omitempty"`
	WiFi     bool `json:"wifi,omitempty"`
}

// HasCoordinates reports whether the provider supplied a usable position.
func (v *Venue) HasCoordinates() bool {
	return v.Location.Latitude != nil && v.Location.Longitude != nil
}

// TotalRatings returns the review count, zero when stats are absent.
func (v *Venue) TotalRatings() int {
	if v.Stats == nil {
		return 0
	}
	return v.Stats.TotalRatings
}

// ClassifiedVenue is a Venue enriched with attributes derived from its
// free text plus the (city, category) pair it was found under.
type ClassifiedVenue struct {
	Venue
	Themes               []string   `json:"detected_themes"`
	AgeGroups            []AgeGroup `json:"detected_age_groups"`
	Languages            []string   `json:"detected_languages"`
	ReligiousAffiliation *string    `json:"detected_religious_affiliation,omitempty"`
	SourceCategory       string     `json:"source_category"`
	SourceCity           string     `json:"source_city"`
}
