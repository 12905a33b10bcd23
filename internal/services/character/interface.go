package character

import (
	"context"

	"github.com/characterforge/characterforge/internal/entities"
	"github.com/characterforge/characterforge/internal/rules"
)

// CreateInput holds the wizard's output. Ability scores are clamped to
// [1, 30] and level to [1, 30]; blank selections fall back to defaults the
// way the wizard pre-selects them.
type CreateInput struct {
	OwnerID    string
	CampaignID string
	IsNPC      bool

	Name       string
	Level      int
	Race       string
	Class      string
	Background string
	Alignment  string

	Scores rules.AbilityScores

	// HPOverride and ACOverride are raw form values; anything that is not
	// an optionally-signed integer is silently ignored
	HPOverride string
	ACOverride string
	Speed      *int

	Traits entities.Traits
	Notes  string
}

// Service manages characters and NPCs.
type Service interface {
	// Create derives a character's statistics and stores it. NPCs are
	// stored without an owner.
	Create(ctx context.Context, input *CreateInput) (*entities.Character, error)

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*entities.Character, error)

	// ListByOwner retrieves a user's characters
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Character, error)

	// ListByCampaign retrieves a campaign's characters, split into player
	// characters and NPCs
	ListByCampaign(ctx context.Context, campaignID string) (pcs, npcs []*entities.Character, err error)

	// Delete removes a character
	Delete(ctx context.Context, id string) error

	// CanEdit reports whether a user may edit a character
	CanEdit(ctx context.Context, actor *entities.User, character *entities.Character) bool

	// CanDelete reports whether a user may delete a character
	CanDelete(ctx context.Context, actor *entities.User, character *entities.Character) bool
}
