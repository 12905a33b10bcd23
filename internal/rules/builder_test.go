package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/characterforge/characterforge/internal/rules"
)

func fighterScores() rules.AbilityScores {
	return rules.AbilityScores{
		Strength:     16,
		Dexterity:    12,
		Constitution: 14,
		Intelligence: 10,
		Wisdom:       10,
		Charisma:     8,
	}
}

func TestBuildFighterLevel5(t *testing.T) {
	got := rules.Build(rules.BuildRequest{
		Race:       "Human",
		Class:      "Fighter",
		Background: "Soldier",
		Level:      5,
		Scores:     fighterScores(),
	})

	// d10, CON 14 (+2): 10+2 at level 1, then 4 levels of floor(10/2)+1+2 = 8.
	assert.Equal(t, 44, got.MaxHP)
	assert.Equal(t, 11, got.ArmorClass) // 10 + DEX mod +1
	assert.Equal(t, 30, got.Speed)
	assert.Equal(t, 3, got.ProficiencyBonus)
	assert.Equal(t, "5d10", got.HitDice)
	assert.Equal(t, map[string]bool{"Strength": true, "Constitution": true}, got.SavingThrows)
	assert.Equal(t, map[string]bool{"Athletics": true, "Intimidation": true}, got.Skills)
}

func TestBuildDeterministic(t *testing.T) {
	req := rules.BuildRequest{
		Race:       "Elf (Wood)",
		Class:      "Rogue",
		Background: "Urchin",
		Level:      7,
		Scores:     fighterScores(),
	}

	assert.Equal(t, rules.Build(req), rules.Build(req))
}

func TestBuildHPFloorsAtOne(t *testing.T) {
	scores := fighterScores()
	scores.Constitution = 1 // -5 modifier

	got := rules.Build(rules.BuildRequest{
		Class:  "Wizard", // d6: 6-5 = 1 at level 1, each level adds 4+1-5 = -1
		Level:  10,
		Scores: scores,
	})

	assert.Equal(t, 1, got.MaxHP)
}

func TestBuildHPOverride(t *testing.T) {
	base := rules.BuildRequest{
		Class:  "Fighter",
		Level:  5,
		Scores: fighterScores(),
	}

	base.HPOverride = "15"
	assert.Equal(t, 15, rules.Build(base).MaxHP)

	base.HPOverride = "0"
	assert.Equal(t, 1, rules.Build(base).MaxHP, "override still floors at 1")

	base.HPOverride = "-12"
	assert.Equal(t, 1, rules.Build(base).MaxHP)

	// Malformed overrides fall back to the computed value.
	base.HPOverride = "lots"
	assert.Equal(t, 44, rules.Build(base).MaxHP)

	base.HPOverride = "1 5"
	assert.Equal(t, 44, rules.Build(base).MaxHP)

	base.HPOverride = "-"
	assert.Equal(t, 44, rules.Build(base).MaxHP)
}

func TestBuildACOverride(t *testing.T) {
	req := rules.BuildRequest{
		Class:      "Fighter",
		Level:      1,
		Scores:     fighterScores(),
		ACOverride: "18",
	}

	assert.Equal(t, 18, rules.Build(req).ArmorClass)

	req.ACOverride = "plate"
	assert.Equal(t, 11, rules.Build(req).ArmorClass)
}

func TestBuildSpeed(t *testing.T) {
	req := rules.BuildRequest{Race: "Elf (Wood)", Class: "Ranger", Level: 1, Scores: fighterScores()}
	assert.Equal(t, 35, rules.Build(req).Speed)

	zero := -10
	req.SpeedOverride = &zero
	assert.Equal(t, 0, rules.Build(req).Speed, "negative override clamps to 0")

	forty := 40
	req.SpeedOverride = &forty
	assert.Equal(t, 40, rules.Build(req).Speed)
}

func TestBuildFeaturesCumulativeInOrder(t *testing.T) {
	got := rules.Build(rules.BuildRequest{
		Class:  "Fighter",
		Level:  2,
		Scores: fighterScores(),
	})

	assert.Equal(t, []string{"Fighting Style", "Second Wind", "Action Surge (one use)"}, got.Features)
}

func TestBuildFeaturesLevelOne(t *testing.T) {
	got := rules.Build(rules.BuildRequest{
		Class:  "Rogue",
		Level:  1,
		Scores: fighterScores(),
	})

	assert.Equal(t, []string{"Expertise", "Sneak Attack (1d6)", "Thieves' Cant"}, got.Features)
}

func TestBuildAcolyteBackground(t *testing.T) {
	got := rules.Build(rules.BuildRequest{
		Race:       "Dragonborn",
		Class:      "Sorcerer",
		Background: "Acolyte",
		Level:      1,
		Scores:     fighterScores(),
	})

	assert.Equal(t, map[string]bool{"Insight": true, "Religion": true}, got.Skills)
	assert.Equal(t, []string{
		"Holy symbol", "Prayer book", "5 sticks of incense",
		"Vestments", "Common clothes", "15 gp pouch",
	}, got.Equipment)
}

func TestBuildUnknownNamesDegrade(t *testing.T) {
	got := rules.Build(rules.BuildRequest{
		Race:       "Warforged",
		Class:      "Artificer",
		Background: "Gambler",
		Level:      3,
		Scores:     fighterScores(),
	})

	assert.Equal(t, 30, got.Speed)
	assert.Equal(t, "3d8", got.HitDice, "unknown class defaults to d8")
	assert.Empty(t, got.SavingThrows)
	assert.Empty(t, got.Skills)
	assert.Empty(t, got.Equipment)
	assert.Empty(t, got.Features)
	// d8 + 2 + 2*(4+1+2) = 24
	assert.Equal(t, 24, got.MaxHP)
}

func TestBuildLevelAboveTwentyCapsLookupsOnly(t *testing.T) {
	got := rules.Build(rules.BuildRequest{
		Class:  "Fighter",
		Level:  25,
		Scores: fighterScores(),
	})

	assert.Equal(t, 6, got.ProficiencyBonus)
	assert.Equal(t, "25d10", got.HitDice, "notation keeps the raw level")
	// HP formula uses the raw level too: 10+2 + 24*8 = 204.
	assert.Equal(t, 204, got.MaxHP)
}
