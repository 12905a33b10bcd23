package entities

import (
	"time"

	"github.com/characterforge/characterforge/internal/rules"
)

// CharacterTemplate is a saved build that can be reused from the wizard.
// Players save their own builds; DMs also save NPC archetypes.
type CharacterTemplate struct {
	ID            string `json:"id"`
	OwnerID       string `json:"owner_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	IsNPCTemplate bool   `json:"is_npc_template"`

	Race       string `json:"race"`
	Class      string `json:"char_class"`
	Background string `json:"background"`
	Alignment  string `json:"alignment"`
	Level      int    `json:"level"`

	Abilities rules.AbilityScores `json:"abilities"`

	Traits Traits `json:"traits"`
	Notes  string `json:"notes"`

	TimesUsed int       `json:"times_used"`
	CreatedAt time.Time `json:"created_at"`
}
