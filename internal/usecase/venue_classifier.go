package usecase

import (
	"strings"

	"github.com/activity-import-service/internal/domain"
	"github.com/activity-import-service/internal/taxonomy"
)

// ClassifyVenue derives themes, age groups, languages and religious
// affiliation from the venue's free text. Pure keyword matching over
// lowercased name + description.
func ClassifyVenue(v domain.Venue, cfg *taxonomy.CategoryConfig, category, city string) domain.ClassifiedVenue {
	text := strings.ToLower(v.Name + " " + v.Description)

	return domain.ClassifiedVenue{
		Venue:                v,
		Themes:               detectThemes(text, cfg),
		AgeGroups:            detectAgeGroups(text, cfg),
		Languages:            detectLanguages(text),
		ReligiousAffiliation: detectReligiousAffiliation(text),
		SourceCategory:       category,
		SourceCity:           city,
	}
}

func detectThemes(text string, cfg *taxonomy.CategoryConfig) []string {
	themes := make([]string, 0, len(cfg.Themes))
	for _, rule := range cfg.Themes {
		if containsAny(text, rule.Keywords) {
			themes = append(themes, rule.Name)
		}
	}
	return themes
}

// detectAgeGroups matches the global age dictionary; when nothing matches
// the category's default groups apply, so the result is never empty.
func detectAgeGroups(text string, cfg *taxonomy.CategoryConfig) []domain.AgeGroup {
	var groups []domain.AgeGroup
	for _, rule := range taxonomy.AgeGroupRules {
		if containsAny(text, rule.Keywords) {
			groups = append(groups, rule.Group)
		}
	}

	if len(groups) == 0 {
		groups = make([]domain.AgeGroup, len(cfg.DefaultAgeGroups))
		copy(groups, cfg.DefaultAgeGroups)
	}
	return groups
}

// detectLanguages always includes English; further languages are added in
// dictionary order without duplicates.
func detectLanguages(text string) []string {
	languages := []string{"English"}
	for _, rule := range taxonomy.LanguageRules {
		if containsAny(text, rule.Keywords) {
			languages = append(languages, rule.Name)
		}
	}
	return languages
}

// detectReligiousAffiliation returns the first matching rule, or nil.
// First-match is the contract: rule order decides ties.
func detectReligiousAffiliation(text string) *string {
	for _, rule := range taxonomy.ReligionRules {
		if containsAny(text, rule.Keywords) {
			name := rule.Name
			return &name
		}
	}
	return nil
}
