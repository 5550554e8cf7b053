package domain

// AgeGroup is one of the fixed audience buckets an activity can target.
type AgeGroup string

const (
	AgeInfants      AgeGroup = "infants"
	AgeToddlers     AgeGroup = "toddlers"
	AgePreschool    AgeGroup = "preschool"
	AgeElementary   AgeGroup = "elementary"
	AgeMiddleSchool AgeGroup = "middle_school"
	AgeHighSchool   AgeGroup = "high_school"
	AgeAllAges      AgeGroup = "all_ages"
)

type ageRange struct {
	minMonths int
	maxMonths int
}

var ageRanges = map[AgeGroup]ageRange{
	AgeInfants:      {0, 12},
	AgeToddlers:     {12, 36},
	AgePreschool:    {36, 60},
	AgeElementary:   {60, 132},
	AgeMiddleSchool: {132, 168},
	AgeHighSchool:   {168, 216},
	AgeAllAges:      {0, 216},
}

// MinAgeMonths returns the lowest group minimum across the detected
// groups, or nil when no groups were detected.
func MinAgeMonths(groups []AgeGroup) *int {
	if len(groups) == 0 {
		return nil
	}
	min := ageRanges[groups[0]].minMonths
	for _, g := range groups[1:] {
		if r, ok := ageRanges[g]; ok && r.minMonths < min {
			min = r.minMonths
		}
	}
	return &min
}

// MaxAgeMonths returns the highest group maximum across the detected
// groups, or nil when no groups were detected.
func MaxAgeMonths(groups []AgeGroup) *int {
	if len(groups) == 0 {
		return nil
	}
	max := ageRanges[groups[0]].maxMonths
	for _, g := range groups[1:] {
		if r, ok := ageRanges[g]; ok && r.maxMonths > max {
			max = r.maxMonths
		}
	}
	return &max
}
