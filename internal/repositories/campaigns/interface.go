package campaigns

import (
	"context"

	"github.com/characterforge/characterforge/internal/entities"
)

// Repository defines the interface for campaign persistence
type Repository interface {
	// Create stores a new campaign
	Create(ctx context.Context, campaign *entities.Campaign) error

	// Get retrieves a campaign by ID
	Get(ctx context.Context, id string) (*entities.Campaign, error)

	// GetByDM retrieves all campaigns run by a specific DM
	GetByDM(ctx context.Context, dmID string) ([]*entities.Campaign, error)

	// List retrieves all campaigns
	List(ctx context.Context) ([]*entities.Campaign, error)

	// Update updates an existing campaign
	Update(ctx context.Context, campaign *entities.Campaign) error

	// Delete removes a campaign
	Delete(ctx context.Context, id string) error
}
