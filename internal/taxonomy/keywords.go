package taxonomy

import "github.com/activity-import-service/internal/domain"

// KeywordRule pairs a label with the keywords that trigger it. Dictionaries
// below are ordered slices, not maps: where only the first match counts
// (religious affiliation, legacy category detection) the tie-break is the
// slice order, which is a deliberate, tested contract.
type KeywordRule struct {
	Name     string
	Keywords []string
}

// AgeGroupRule pairs an age group with its trigger keywords.
type AgeGroupRule struct {
	Group    domain.AgeGroup
	Keywords []string
}

// AgeGroupRules detect target audiences from venue text.
var AgeGroupRules = []AgeGroupRule{
	{Group: domain.AgeInfants, Keywords: []string{"infant", "baby", "newborn", "0-12 months", "0-1 year"}},
	{Group: domain.AgeToddlers, Keywords: []string{"toddler", "1-3 years", "12-36 months", "early childhood"}},
	{Group: domain.AgePreschool, Keywords: []string{"preschool", "pre-k", "3-5 years", "4-6 years"}},
	{Group: domain.AgeElementary, Keywords: []string{"elementary", "k-5", "5-12 years", "school age"}},
	{Group: domain.AgeMiddleSchool, Keywords: []string{"middle school", "6-8", "11-14 years", "tween"}},
	{Group: domain.AgeHighSchool, Keywords: []string{"high school", "9-12", "14-18 years", "teen", "teenager"}},
	{Group: domain.AgeAllAges, Keywords: []string{"all ages", "family", "multi-age", "mixed age"}},
}

// LanguageRules detect languages of instruction beyond the English default.
var LanguageRules = []KeywordRule{
	{Name: "Spanish", Keywords: []string{"spanish", "español", "bilingual", "dual language"}},
	{Name: "French", Keywords: []string{"french", "français", "francais"}},
	{Name: "Chinese (Mandarin)", Keywords: []string{"chinese", "mandarin", "中文"}},
	{Name: "German", Keywords: []string{"german", "deutsch"}},
	{Name: "Italian", Keywords: []string{"italian", "italiano"}},
	{Name: "Portuguese", Keywords: []string{"portuguese", "português"}},
	{Name: "Russian", Keywords: []string{"russian", "русский"}},
	{Name: "Arabic", Keywords: []string{"arabic", "عربي"}},
	{Name: "Hebrew", Keywords: []string{"hebrew", "עברית"}},
	{Name: "Japanese", Keywords: []string{"japanese", "日本語"}},
	{Name: "Korean", Keywords: []string{"korean", "한국어"}},
}

// ReligionRules detect religious affiliation; the first matching rule wins.
var ReligionRules = []KeywordRule{
	{Name: "Catholic", Keywords: []string{"catholic", "st.", "saint", "holy", "sacred heart"}},
	{Name: "Protestant", Keywords: []string{"baptist", "methodist", "presbyterian", "lutheran", "episcopal"}},
	{Name: "Jewish", Keywords: []string{"jewish", "hebrew", "temple", "synagogue", "torah"}},
	{Name: "Islamic", Keywords: []string{"islamic", "muslim", "mosque", "quran"}},
	{Name: "Hindu", Keywords: []string{"hindu", "vedic", "sanskrit"}},
	{Name: "Buddhist", Keywords: []string{"buddhist", "zen", "dharma"}},
	{Name: "Non-denominational Christian", Keywords: []string{"christian", "christ", "gospel", "faith"}},
	{Name: "Interfaith", Keywords: []string{"interfaith", "multi-faith", "ecumenical"}},
}

// AdultKeywords disqualify a venue outright.
var AdultKeywords = []string{"bar", "nightclub", "casino", "adult", "21+", "liquor"}

// KidFriendlyKeywords: a venue must match at least one to survive the
// quality filter.
var KidFriendlyKeywords = []string{
	"school", "education", "childcare", "daycare", "preschool",
	"youth", "kids", "children", "family", "recreation", "sports",
	"arts", "music", "dance", "theater", "camp",
}
