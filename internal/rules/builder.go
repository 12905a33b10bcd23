// Package rules derives a character's statistics from race, class,
// background, level, and ability scores. Build is a pure function of its
// request and the rulebook catalog: no hidden state, no randomness, safe for
// unlimited concurrent use.
package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/characterforge/characterforge/internal/rulebook"
)

// defaultHitDie is used when the class name has no catalog entry.
const defaultHitDie = 8

// defaultSpeed is used when the race name has no catalog entry.
const defaultSpeed = 30

// AbilityScores holds the six ability scores. The producing caller is
// responsible for clamping each score to [1,30]; Build does not re-validate.
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Modifier returns the ability modifier for the named ability, 0 for an
// unknown name.
func (a AbilityScores) Modifier(ability string) int {
	return rulebook.AbilityModifier(a.Score(ability))
}

// Score returns the score for the named ability, 0 for an unknown name.
func (a AbilityScores) Score(ability string) int {
	switch ability {
	case rulebook.AbilityStrength:
		return a.Strength
	case rulebook.AbilityDexterity:
		return a.Dexterity
	case rulebook.AbilityConstitution:
		return a.Constitution
	case rulebook.AbilityIntelligence:
		return a.Intelligence
	case rulebook.AbilityWisdom:
		return a.Wisdom
	case rulebook.AbilityCharisma:
		return a.Charisma
	}
	return 0
}

// BuildRequest carries the user-chosen inputs for a character build.
// HPOverride and ACOverride are raw form values: an all-digits string
// (optional leading minus) replaces the computed value, anything else is
// silently ignored. SpeedOverride, when set, replaces the racial speed.
type BuildRequest struct {
	Race          string
	Class         string
	Background    string
	Level         int
	Scores        AbilityScores
	HPOverride    string
	ACOverride    string
	SpeedOverride *int
}

// BuildResult is the derived stat block. Unknown race, class, or background
// names degrade to defaults (zero bonuses, d8 hit die, empty lists); Build
// never fails.
type BuildResult struct {
	MaxHP            int             `json:"max_hp"`
	ArmorClass       int             `json:"armor_class"`
	Speed            int             `json:"speed"`
	ProficiencyBonus int             `json:"proficiency_bonus"`
	HitDice          string          `json:"hit_dice"`
	SavingThrows     map[string]bool `json:"saving_throws"`
	Skills           map[string]bool `json:"skills"`
	Equipment        []string        `json:"equipment"`
	Features         []string        `json:"features"`
}

// Build derives a BuildResult from the request and the rulebook catalog.
func Build(req BuildRequest) BuildResult {
	class := rulebook.GetClass(req.Class)
	race := rulebook.GetRace(req.Race)
	background := rulebook.GetBackground(req.Background)

	hitDie := defaultHitDie
	if class != nil {
		hitDie = class.HitDie
	}

	conMod := req.Scores.Modifier(rulebook.AbilityConstitution)
	dexMod := req.Scores.Modifier(rulebook.AbilityDexterity)

	// Max at level 1, then the average die rounded up per subsequent level.
	// The subtracted levels can drag the total negative for very low
	// constitution, so the whole expression floors at 1.
	hp := hitDie + conMod + (req.Level-1)*(hitDie/2+1+conMod)
	if hp < 1 {
		hp = 1
	}
	if override, ok := parseOverride(req.HPOverride); ok {
		hp = override
		if hp < 1 {
			hp = 1
		}
	}

	ac := 10 + dexMod
	if override, ok := parseOverride(req.ACOverride); ok {
		ac = override
	}

	speed := defaultSpeed
	if race != nil {
		speed = race.Speed
	}
	if req.SpeedOverride != nil {
		speed = *req.SpeedOverride
		if speed < 0 {
			speed = 0
		}
	}

	// The proficiency lookup caps at 20; the level field itself is the
	// caller's to clamp.
	cappedLevel := req.Level
	if cappedLevel > 20 {
		cappedLevel = 20
	}

	saves := make(map[string]bool)
	if class != nil {
		for _, ability := range class.SavingThrows {
			saves[ability] = true
		}
	}

	// Only background proficiencies are auto-populated; class skill choices
	// are picked by the player elsewhere.
	skills := make(map[string]bool)
	equipment := []string{}
	if background != nil {
		for _, skill := range background.SkillProficiencies {
			skills[skill] = true
		}
		equipment = append(equipment, background.Equipment...)
	}

	features := []string{}
	if class != nil {
		for lvl := 1; lvl <= cappedLevel; lvl++ {
			features = append(features, class.FeaturesByLevel[lvl]...)
		}
	}

	return BuildResult{
		MaxHP:            hp,
		ArmorClass:       ac,
		Speed:            speed,
		ProficiencyBonus: rulebook.ProficiencyBonus(cappedLevel),
		HitDice:          fmt.Sprintf("%dd%d", req.Level, hitDie),
		SavingThrows:     saves,
		Skills:           skills,
		Equipment:        equipment,
		Features:         features,
	}
}

// parseOverride reports whether raw is a usable stat override: an optional
// leading minus followed by digits only. Malformed values are ignored, not
// treated as errors.
func parseOverride(raw string) (int, bool) {
	digits := strings.TrimPrefix(raw, "-")
	if digits == "" {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}
