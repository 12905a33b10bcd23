package entities

import (
	"time"

	"github.com/characterforge/characterforge/internal/rules"
)

// Traits holds the personality fields picked during the wizard's personality
// step.
type Traits struct {
	Personality string `json:"personality"`
	Ideal       string `json:"ideal"`
	Bond        string `json:"bond"`
	Flaw        string `json:"flaw"`
}

// Character is a player character or NPC. NPCs have no owner and may only be
// created by DMs and admins. Derived fields (MaxHP, ArmorClass, ...) are
// filled from a rules.BuildResult at creation time.
type Character struct {
	ID         string `json:"id"`
	OwnerID    string `json:"owner_id"`    // empty for NPCs
	CampaignID string `json:"campaign_id"` // empty for unassigned characters
	IsNPC      bool   `json:"is_npc"`

	Name             string `json:"name"`
	Level            int    `json:"level"`
	Class            string `json:"char_class"`
	Subclass         string `json:"subclass"`
	Race             string `json:"race"`
	Background       string `json:"background"`
	Alignment        string `json:"alignment"`
	ExperiencePoints int    `json:"experience_points"`

	Abilities rules.AbilityScores `json:"abilities"`

	MaxHP            int    `json:"max_hp"`
	CurrentHP        int    `json:"current_hp"`
	TempHP           int    `json:"temp_hp"`
	ArmorClass       int    `json:"armor_class"`
	Initiative       int    `json:"initiative"`
	Speed            int    `json:"speed"`
	ProficiencyBonus int    `json:"proficiency_bonus"`
	HitDice          string `json:"hit_dice"`

	Skills       map[string]bool `json:"skills"`
	SavingThrows map[string]bool `json:"saving_throws"`
	Equipment    []string        `json:"equipment"`
	Features     []string        `json:"features"`
	Traits       Traits          `json:"traits"`
	Notes        string          `json:"notes"`

	BuildComplete bool      `json:"build_complete"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ApplyBuild copies derived statistics onto the character and marks current
// HP full.
func (c *Character) ApplyBuild(result rules.BuildResult) {
	c.MaxHP = result.MaxHP
	c.CurrentHP = result.MaxHP
	c.ArmorClass = result.ArmorClass
	c.Speed = result.Speed
	c.ProficiencyBonus = result.ProficiencyBonus
	c.HitDice = result.HitDice
	c.SavingThrows = result.SavingThrows
	c.Skills = result.Skills
	c.Equipment = result.Equipment
	c.Features = result.Features
	c.BuildComplete = true
}

// ToTemplate snapshots the character's build inputs into a reusable template.
// The caller assigns the template's ID and owner.
func (c *Character) ToTemplate(name, description string) *CharacterTemplate {
	return &CharacterTemplate{
		Name:          name,
		Description:   description,
		IsNPCTemplate: c.IsNPC,
		Race:          c.Race,
		Class:         c.Class,
		Background:    c.Background,
		Alignment:     c.Alignment,
		Level:         c.Level,
		Abilities:     c.Abilities,
		Traits:        c.Traits,
		Notes:         c.Notes,
	}
}
