// Package taxonomy holds the static configuration the import pipeline is
// driven by: the activity category registry, the city coordinate table and
// the global keyword dictionaries. Everything here is immutable and loaded
// once at process start.
package taxonomy

import (
	"sort"

	"github.com/activity-import-service/internal/domain"
	"github.com/activity-import-service/internal/pkg/errors"
)

// ThemeRule maps a theme name to the keywords that trigger it. Rules are
// evaluated in slice order.
type ThemeRule struct {
	Name     string
	Keywords []string
}

// CategoryConfig describes how one activity category is searched for and
// classified.
type CategoryConfig struct {
	// Key is the canonical category identifier.
	Key string

	// Queries are the provider search strings; the client issues one
	// request per query.
	Queries []string

	// PlaceCategoryIDs are the provider's own category codes.
	PlaceCategoryIDs []string

	// Keywords gate text relevance: a venue must contain at least one.
	Keywords []string

	// Themes are evaluated against venue text by the classifier.
	Themes []ThemeRule

	// DefaultAgeGroups apply when no age keyword matches the venue text.
	DefaultAgeGroups []domain.AgeGroup
}

// aliases maps retired first-generation category keys onto their
// successors so older import requests keep working.
var aliases = map[string]string{
	"preschools":   "preschool",
	"after-school": "after_school_academic",
	"summer-camps": "summer_camp_traditional",
}

// ConfigFor resolves a category key (or legacy alias) to its config.
func ConfigFor(category string) (*CategoryConfig, error) {
	key := category
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	cfg, ok := registry[key]
	if !ok {
		return nil, errors.ErrUnknownCategory.WithDetails(map[string]interface{}{
			"category": category,
		})
	}
	return cfg, nil
}

// IsValidCategory reports whether the key (or alias) is recognized.
func IsValidCategory(category string) bool {
	_, err := ConfigFor(category)
	return err == nil
}

// Categories returns all canonical category keys, sorted.
func Categories() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
