// Package rulebook holds the immutable SRD 5.1 reference tables: races,
// classes, backgrounds, alignments, skills, and the proficiency-bonus table.
// The tables are package data loaded once at process start and never mutated;
// lookups are safe for concurrent use without locking. Returned pointers share
// the package data and must be treated as read-only.
package rulebook

// Ability names match the JSON keys used throughout the application.
const (
	AbilityStrength     = "strength"
	AbilityDexterity    = "dexterity"
	AbilityConstitution = "constitution"
	AbilityIntelligence = "intelligence"
	AbilityWisdom       = "wisdom"
	AbilityCharisma     = "charisma"
)

// Abilities lists the six ability names in display order.
var Abilities = []string{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// Race describes a playable race: base speed, racial ability bonuses, and
// trait names. Versatile races may carry bonuses for all six abilities.
type Race struct {
	Name           string         `json:"name"`
	Speed          int            `json:"speed"`
	AbilityBonuses map[string]int `json:"ability_bonuses"`
	Traits         []string       `json:"traits"`
}

// Class describes a character class. HitDie is the die size (6, 8, 10, or 12).
// FeaturesByLevel is cumulative: a level-N character has the features of every
// level 1..N.
type Class struct {
	Name                string           `json:"name"`
	HitDie              int              `json:"hit_die"`
	PrimaryAbility      string           `json:"primary_ability"`
	SavingThrows        []string         `json:"saving_throws"`
	ArmorProficiencies  []string         `json:"armor_proficiencies"`
	WeaponProficiencies []string         `json:"weapon_proficiencies"`
	SkillChoices        []string         `json:"skill_choices"`
	NumSkills           int              `json:"num_skills"`
	FeaturesByLevel     map[int][]string `json:"features_by_level"`
}

// Background describes a character background: exactly two skill
// proficiencies, starting equipment, and a background feature.
type Background struct {
	Name               string   `json:"name"`
	SkillProficiencies []string `json:"skill_proficiencies"`
	Equipment          []string `json:"equipment"`
	Feature            string   `json:"feature"`
}

// Skill pairs a skill name with its governing ability.
type Skill struct {
	Name    string `json:"name"`
	Ability string `json:"ability"`
}

var (
	raceIndex       map[string]*Race
	classIndex      map[string]*Class
	backgroundIndex map[string]*Background
)

func init() {
	raceIndex = make(map[string]*Race, len(Races))
	for i := range Races {
		raceIndex[Races[i].Name] = &Races[i]
	}
	classIndex = make(map[string]*Class, len(Classes))
	for i := range Classes {
		classIndex[Classes[i].Name] = &Classes[i]
	}
	backgroundIndex = make(map[string]*Background, len(Backgrounds))
	for i := range Backgrounds {
		backgroundIndex[Backgrounds[i].Name] = &Backgrounds[i]
	}
}

// GetRace returns the race with the given name, or nil if the catalog has no
// such entry. Matches are case-sensitive; absence is a valid outcome callers
// handle by falling back to defaults.
func GetRace(name string) *Race {
	return raceIndex[name]
}

// GetClass returns the class with the given name, or nil if absent.
func GetClass(name string) *Class {
	return classIndex[name]
}

// GetBackground returns the background with the given name, or nil if absent.
func GetBackground(name string) *Background {
	return backgroundIndex[name]
}

// AbilityModifier derives the modifier for an ability score using floor
// division: floor((score-10)/2). Go's integer division truncates toward zero,
// which would give modifier(9) == 0 instead of -1, so negative differences are
// handled explicitly.
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return -((-diff + 1) / 2)
	}
	return diff / 2
}

// ProficiencyBonus returns the level-banded proficiency bonus: +2 for levels
// 1-4, +3 for 5-8, +4 for 9-12, +5 for 13-16, +6 for 17-20. Any level outside
// [1,20], including zero and negatives, returns the default 2. That fallback
// is long-standing observed behavior, kept rather than turned into an error.
func ProficiencyBonus(level int) int {
	if level < 1 || level > 20 {
		return 2
	}
	return 2 + (level-1)/4
}
