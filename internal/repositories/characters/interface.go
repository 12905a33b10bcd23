package characters

import (
	"context"

	"github.com/characterforge/characterforge/internal/entities"
)

// Repository defines the interface for character persistence. It stores both
// player characters and NPCs; NPCs have an empty owner ID.
type Repository interface {
	// Create stores a new character
	Create(ctx context.Context, character *entities.Character) error

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*entities.Character, error)

	// GetByOwner retrieves all characters owned by a user
	GetByOwner(ctx context.Context, ownerID string) ([]*entities.Character, error)

	// GetByCampaign retrieves all characters assigned to a campaign,
	// NPCs included
	GetByCampaign(ctx context.Context, campaignID string) ([]*entities.Character, error)

	// List retrieves every character
	List(ctx context.Context) ([]*entities.Character, error)

	// Update updates an existing character
	Update(ctx context.Context, character *entities.Character) error

	// Delete removes a character
	Delete(ctx context.Context, id string) error
}
