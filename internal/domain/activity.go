package domain

import (
	"time"

	"github.com/lib/pq"
)

// Activity is the persisted, classified, city-scoped record of a kids'
// activity provider. At most one row exists per foursquare_id; the
// uniqueness is enforced by the upsert conflict key.
type Activity struct {
	ID                  int64          `json:"id" db:"id"`
	Name                string         `json:"name" db:"name"`
	Description         string         `json:"description" db:"description"`
	Category            string         `json:"category" db:"category"`
	Subcategory         *string        `json:"subcategory,omitempty" db:"subcategory"`
	Themes              pq.StringArray `json:"themes" db:"themes"`
	AgeGroups           pq.StringArray `json:"age_groups" db:"age_groups"`
	MinAgeMonths        *int           `json:"min_age,omitempty" db:"min_age"`
	MaxAgeMonths        *int           `json:"max_age,omitempty" db:"max_age"`
	Address             string         `json:"address" db:"address"`
	CityID              int64          `json:"city_id" db:"city_id"`
	Latitude            *float64       `json:"latitude,omitempty" db:"latitude"`
	Longitude           *float64       `json:"longitude,omitempty" db:"longitude"`
	Phone               *string        `json:"phone,omitempty" db:"phone"`
	Email               *string        `json:"email,omitempty" db:"email"`
	Website             *string        `json:"website,omitempty" db:"website"`
	Rating              *float64       `json:"rating,omitempty" db:"rating"`
	ReviewCount         int            `json:"review_count" db:"review_count"`
	PriceRange          *string        `json:"price_range,omitempty" db:"price_range"`
	Hours               *string        `json:"hours,omitempty" db:"hours"`
	Amenities           pq.StringArray `json:"amenities" db:"amenities"`
	Languages           pq.StringArray `json:"languages" db:"languages"`
	ReligiousAffil      *string        `json:"religious_affiliation,omitempty" db:"religious_affiliation"`
	Accreditation       pq.StringArray `json:"accreditation" db:"accreditation"`
	Capacity            *int           `json:"capacity,omitempty" db:"capacity"`
	TeacherStudentRatio *string        `json:"teacher_student_ratio,omitempty" db:"teacher_student_ratio"`
	FoursquareID        string         `json:"foursquare_id" db:"foursquare_id"`
	Featured            bool           `json:"featured" db:"featured"`
	Verified            bool           `json:"verified" db:"verified"`
	CreatedAt           time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at" db:"updated_at"`
}
