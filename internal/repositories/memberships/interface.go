package memberships

import (
	"context"

	"github.com/characterforge/characterforge/internal/entities"
)

// Repository defines the interface for campaign-membership persistence.
// A user has at most one membership per campaign.
type Repository interface {
	// Create stores a new membership; duplicates per (campaign, user) fail
	Create(ctx context.Context, membership *entities.CampaignMembership) error

	// Get retrieves a membership by ID
	Get(ctx context.Context, id string) (*entities.CampaignMembership, error)

	// GetByCampaignAndUser retrieves the membership linking a user to a campaign
	GetByCampaignAndUser(ctx context.Context, campaignID, userID string) (*entities.CampaignMembership, error)

	// GetByCampaign retrieves all memberships of a campaign
	GetByCampaign(ctx context.Context, campaignID string) ([]*entities.CampaignMembership, error)

	// GetByUser retrieves all memberships of a user
	GetByUser(ctx context.Context, userID string) ([]*entities.CampaignMembership, error)

	// Update updates an existing membership
	Update(ctx context.Context, membership *entities.CampaignMembership) error

	// Delete removes a membership
	Delete(ctx context.Context, id string) error
}
