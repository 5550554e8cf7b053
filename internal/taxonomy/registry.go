package taxonomy

import "github.com/activity-import-service/internal/domain"

// registry is the unified category set: eleven enhanced categories plus
// the two first-generation ones without an enhanced successor.
var registry = map[string]*CategoryConfig{
	"daycare": {
		Key: "daycare",
		Queries: []string{
			"daycare center",
			"child care center",
			"infant care",
			"toddler care",
			"nursery school",
			"childcare facility",
		},
		PlaceCategoryIDs: []string{"12058", "12059"},
		Keywords:         []string{"daycare", "childcare", "infant", "toddler", "nursery", "babysitting"},
		Themes: []ThemeRule{
			{Name: "Infant Care", Keywords: []string{"infant", "baby", "newborn", "0-12 months"}},
			{Name: "Toddler Care", Keywords: []string{"toddler", "1-3 years", "early childhood"}},
			{Name: "Drop-in Care", Keywords: []string{"drop-in", "hourly", "flexible"}},
			{Name: "Extended Hours", Keywords: []string{"24 hour", "extended", "early morning", "late evening"}},
		},
		DefaultAgeGroups: []domain.AgeGroup{domain.AgeInfants, domain.AgeToddlers},
	},

	"preschool": {
		Key: "preschool",
		Queries: []string{
			"preschool",
			"pre-k",
			"prekindergarten",
			"montessori school",
			"waldorf school",
			"early childhood education",
			"nursery school",
		},
		PlaceCategoryIDs: []string{"12058", "12059", "12060"},
		Keywords:         []string{"preschool", "pre-k", "montessori", "waldorf", "early childhood", "kindergarten prep"},
		Themes: []ThemeRule{
			{Name: "Montessori", Keywords: []string{"montessori", "maria montessori", "child-led"}},
			{Name: "Waldorf", Keywords: []string{"waldorf", "steiner", "anthroposophy"}},
			{Name: "Reggio Emilia", Keywords: []string{"reggio emilia", "project-based"}},
			{Name: "Play-Based Learning", Keywords: []string{"play-based", "learning through play"}},
			{Name: "Academic Prep", Keywords: []string{"kindergarten prep", "academic readiness", "school prep"}},
			{Name: "Bilingual Education", Keywords: []string{"bilingual", "dual language", "spanish", "french", "chinese"}},
			{Name: "Religious Education", Keywords: []string{"catholic", "christian", "jewish", "islamic", "faith-based"}},
			{Name: "Nature-Based", Keywords: []string{"nature", "outdoor", "forest", "garden", "environmental"}},
		},
		DefaultAgeGroups: []domain.AgeGroup{domain.AgeToddlers, domain.AgePreschool},
	},

	"after_school_academic": {
		Key: "after_school_academic",
		Queries: []string{
			"after school program",
			"tutoring center",
			"homework help",
			"learning center",
			"academic support",
			"test prep",
			"kumon",
			"sylvan learning",
		},
		PlaceCategoryIDs: []string{"12058", "10032"},
		Keywords:         []string{"tutoring", "homework", "academic", "learning", "education", "study"},
		Themes: []ThemeRule{
			{Name: "Homework Help", Keywords: []string{"homework", "study hall", "supervised study"}},
			{Name: "Tutoring", Keywords: []string{"tutoring", "one-on-one", "small group", "personalized"}},
			{Name: "Test Prep", Keywords: []string{"test prep", "sat", "act", "standardized test"}},
			{Name: "Reading Programs", Keywords: []string{"reading", "literacy", "phonics", "comprehension"}},
			{Name: "Math Programs", Keywords: []string{"math", "mathematics", "algebra", "geometry", "calculus"}},
		},
		DefaultAgeGroups: []domain.AgeGroup{domain.AgeElementary, domain.AgeMiddleSchool, domain.AgeHighSchool},
	},

	"after_school_stem": {
		Key: "after_school_stem",
		Queries: []string{
			"coding classes",
			"robotics program",
			"STEM program",
			"science classes",
			"engineering for kids",
			"computer programming",
			"maker space",
		},
		PlaceCategoryIDs: []string{"12058", "10027"},
		Keywords:         []string{"stem", "coding", "robotics", "science", "engineering", "technology", "programming"},
		Themes: []ThemeRule{
			{Name: "Coding", Keywords: []string{"coding", "programming", "python", "scratch", "javascript"}},
			{Name: "Robotics", Keywords: []string{"robotics", "robot", "lego mindstorms", "vex", "arduino"}},
			{Name: "Science Experiments", Keywords: []string{"science", "experiments", "chemistry", "physics", "biology"}},
			{Name: "Engineering", Keywords: []string{"engineering", "design thinking", "problem solving"}},
			{Name: "Math Enrichment", Keywords: []string{"advanced math", "competition math", "math olympiad"}},
		},
		DefaultAgeGroups: []domain.AgeGroup{domain.AgeElementary, domain.AgeMiddleSchool, domain.AgeHighSchool},
	},

	"after_school_arts": {
		Key: "after_school_arts",
		Queries: []string{
			"art classes",
			"music lessons",
			"dance studio",
			"theater program",
			"drama classes",
			"creative writing",
			"pottery classes",
		},
		PlaceCategoryIDs: []string{"10027", "10028"},
		Keywords:         []string{"art", "music", "dance", "theater", "creative", "lessons", "classes"},
		Themes: []ThemeRule{
			{Name: "Theater", Keywords: []string{"theater", "drama", "acting", "musical theater", "performance"}},
			{Name: "Music Lessons", Keywords: []string{"music", "piano", "guitar", "violin", "voice", "band", "orchestra"}},
			{Name: "Art Classes", Keywords: []string{"art", "painting", "drawing", "sculpture", "pottery", "ceramics"}},
			{Name: "Dance", Keywords: []string{"dance", "ballet", "jazz", "hip hop", "contemporary", "tap"}},
			{Name: "Creative Writing", Keywords: []string{"writing", "creative writing", "storytelling", "poetry"}},
		},
		DefaultAgeGroups: []domain.AgeGroup{domain.AgePreschool, domain.AgeElementary, domain.AgeMiddleSchool, domain.AgeHighSchool},
	},

	"after_school_sports": {
		Key: "after_school_sports",
		Queries: []string{
			"youth sports",
			"kids sports",
			"soccer club",
			"basketball program",
			"swimming lessons",
			"martial arts",
			"gymnastics",
			"tennis lessons",
		},
		PlaceCategoryIDs: []string{"18021", "18022", "18023"},
		Keywords:         []string{"sports", "athletics", "youth", "kids", "training", "lessons", "club"},
		Themes: []ThemeRule{
			{Name: "Soccer", Keywords: []string{"soccer", "football", "futbol", "youth soccer"}},
			{Name: "Basketball", Keywords: []string{"basketball", "hoops", "youth basketball"}},
			{Name: "Baseball/Softball", Keywords: []string{"baseball", "softball", "little league", "tee ball"}},
			{Name: "Swimming", Keywords: []string{"swimming", "swim lessons", "aquatics", "water safety"}},
			{Name: "Martial Arts", Keywords: []string{"martial arts", "karate", "taekwondo", "judo", "kung fu"}},
			{Name: "Gymnastics", Keywords: []string{"gymnastics", "tumbling", "acrobatics", "cheerleading"}},
			{Name: "Tennis", Keywords: []string{"tennis", "racquet sports", "youth tennis"}},
			{Name: "Track and Field", Keywords: []string{"track", "field", "running", "athletics"}},
		},
		DefaultAgeGroups: []domain.AgeGroup{domain.AgePreschool, domain.AgeElementary, domain.AgeMiddleSchool, domain.AgeHighSchool},
	},

	"summer_camp_traditional": {
		Key: "summer_camp_traditional",
		Queries: []string{
			"summer camp",
			"day camp",
			"youth camp",
			"kids camp",
			"summer program",
			"vacation camp",
		},
		PlaceCategoryIDs: []string{"10032", "18021"},
		Keywords:         []string{"summer camp", "day camp", "youth camp", "vacation", "activities"},
		Themes: []ThemeRule{
			{Name: "Traditional Camp", Keywords: []string{"traditional", "classic camp", "general camp"}},
			{Name: "Day Camp", Keywords: []string{"day camp", "non-residential", "daily activities"}},
			{Name: "Adventure Camp", Keywords: []string{"adventure", "outdoor", "hiking", "camping"}},
			{Name: "Nature Camp", Keywords: []string{"nature", "environmental", "ecology", "wildlife"}},
		},
		DefaultAgeGroups: []domain.AgeGroup{domain.AgePreschool, domain.AgeElementary, domain.AgeMiddleSchool},
	},

	"summer_camp_sports": {
		Key: "summer_camp_sports",
		Queries: []string{
			"sports camp",
			"soccer camp",
			"basketball camp",
			"swim camp",
			"tennis camp",
			"multi-sport camp",
		},
		PlaceCategoryIDs: []string{"18021", "18022"},
		Keywords:         []string{"sports camp", "athletic camp", "training camp", "skills camp"},
		Themes: []ThemeRule{
			{Name: "Sports Camp", Keywords: []string{"multi-sport", "athletics", "sports skills"}},
			{Name: "Soccer Camp", Keywords: []string{"soccer", "football camp"}},
			{Name: "Basketball Camp", Keywords: []string{"basketball", "hoops camp"}},
			{Name: "Swimming Camp", Keywords: []string{"swim camp", "aquatics"}},
			{Name: "Tennis Camp", Keywords: []string{"tennis", "racquet sports"}},
		},
		DefaultAgeGroups: []domain.AgeGroup{domain.AgeElementary, domain.AgeMiddleSchool, domain.AgeHighSchool},
	},

	"summer_camp_arts": {
		Key: "summer_camp_arts",
		Queries: []string{
			"art camp",
			"music camp",
			"theater camp",
			"dance camp",
			"creative camp",
			"performing arts camp",
		},
		PlaceCategoryIDs: []string{"10027", "10028"},
		Keywords:         []string{"art camp", "music camp", "theater camp", "creative", "performing arts"},
		Themes: []ThemeRule{
			{Name: "Arts Camp", Keywords: []string{"art camp", "creative arts", "visual arts"}},
			{Name: "Music Camp", Keywords: []string{"music camp", "band camp", "choir camp"}},
			{Name: "Theater Camp", Keywords: []string{"theater camp", "drama camp", "acting camp"}},
			{Name: "Dance Camp", Keywords: []string{"dance camp", "ballet camp", "movement"}},
		},
		DefaultAgeGroups: []domain.AgeGroup{domain.AgePreschool, domain.AgeElementary, domain.AgeMiddleSchool, domain.AgeHighSchool},
	},

	"summer_camp_stem": {
		Key: "summer_camp_stem",
		Queries: []string{
			"STEM camp",
			"science camp",
			"coding camp",
			"robotics camp",
			"tech camp",
			"engineering camp",
		},
		PlaceCategoryIDs: []string{"12058", "10027"},
		Keywords:         []string{"stem camp", "science camp", "coding camp", "tech camp", "robotics"},
		Themes: []ThemeRule{
			{Name: "STEM Camp", Keywords: []string{"stem", "science technology engineering math"}},
			{Name: "Science Camp", Keywords: []string{"science", "experiments", "laboratory"}},
			{Name: "Coding Camp", Keywords: []string{"coding", "programming", "computer science"}},
			{Name: "Robotics Camp", Keywords: []string{"robotics", "robot building", "automation"}},
		},
		DefaultAgeGroups: []domain.AgeGroup{domain.AgeElementary, domain.AgeMiddleSchool, domain.AgeHighSchool},
	},

	"summer_camp_specialty": {
		Key: "summer_camp_specialty",
		Queries: []string{
			"specialty camp",
			"academic camp",
			"enrichment camp",
			"leadership camp",
			"adventure camp",
		},
		PlaceCategoryIDs: []string{"10032", "18021"},
		Keywords:         []string{"specialty camp", "enrichment", "leadership", "academic camp"},
		Themes: []ThemeRule{
			{Name: "Academic Enrichment", Keywords: []string{"academic", "enrichment", "learning"}},
			{Name: "Leadership", Keywords: []string{"leadership", "character building", "life skills"}},
			{Name: "Adventure", Keywords: []string{"adventure", "outdoor education", "wilderness"}},
			{Name: "Special Needs", Keywords: []string{"special needs", "inclusive", "adaptive"}},
		},
		DefaultAgeGroups: []domain.AgeGroup{domain.AgeElementary, domain.AgeMiddleSchool, domain.AgeHighSchool},
	},

	// First-generation categories without an enhanced successor.
	"sports-fitness": {
		Key: "sports-fitness",
		Queries: []string{
			`"kids sports" OR "youth sports" OR "children fitness"`,
		},
		PlaceCategoryIDs: []string{"18021", "18022", "18023"},
		Keywords:         []string{"kids sports", "youth sports", "martial arts", "gymnastics", "swimming", "soccer", "basketball"},
		Themes: []ThemeRule{
			{Name: "Martial Arts", Keywords: []string{"martial arts", "karate", "taekwondo", "judo"}},
			{Name: "Gymnastics", Keywords: []string{"gymnastics", "tumbling"}},
			{Name: "Swimming", Keywords: []string{"swimming", "swim lessons", "aquatics"}},
		},
		DefaultAgeGroups: []domain.AgeGroup{domain.AgeElementary, domain.AgeMiddleSchool},
	},

	"arts-crafts": {
		Key: "arts-crafts",
		Queries: []string{
			`"art classes" OR "music lessons" OR "dance classes"`,
		},
		PlaceCategoryIDs: []string{"10027", "10028"},
		Keywords:         []string{"art classes", "music lessons", "dance classes", "pottery", "painting", "theater", "drama"},
		Themes: []ThemeRule{
			{Name: "Art Classes", Keywords: []string{"art", "painting", "drawing", "pottery"}},
			{Name: "Music Lessons", Keywords: []string{"music", "piano", "guitar", "violin"}},
			{Name: "Dance", Keywords: []string{"dance", "ballet", "jazz"}},
		},
		DefaultAgeGroups: []domain.AgeGroup{domain.AgePreschool, domain.AgeElementary},
	},
}
