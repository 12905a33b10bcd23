package campaign

import (
	"context"

	"github.com/characterforge/characterforge/internal/entities"
)

// Member pairs a membership with the user it belongs to, for the DM panel.
type Member struct {
	Membership *entities.CampaignMembership
	User       *entities.User
}

// Service manages campaigns and their memberships.
type Service interface {
	// Create creates a campaign owned by a DM. The DM gets an approved
	// membership automatically.
	Create(ctx context.Context, dmID, name, description string) (*entities.Campaign, error)

	// Get retrieves a campaign by ID
	Get(ctx context.Context, id string) (*entities.Campaign, error)

	// List retrieves all campaigns, newest first
	List(ctx context.Context) ([]*entities.Campaign, error)

	// ListByDM retrieves a DM's campaigns, newest first
	ListByDM(ctx context.Context, dmID string) ([]*entities.Campaign, error)

	// Delete removes a campaign and all of its memberships
	Delete(ctx context.Context, id string) error

	// Join requests membership in a campaign. The membership starts
	// unapproved.
	Join(ctx context.Context, campaignID, userID string) (*entities.CampaignMembership, error)

	// Approve marks a user's membership approved. DMs cannot approve
	// other DMs; admins can.
	Approve(ctx context.Context, campaignID, userID string, actor *entities.User) error

	// Kick removes a user's membership
	Kick(ctx context.Context, campaignID, userID string) error

	// Members returns members of a campaign, split into approved and
	// pending, each paired with its user record
	Members(ctx context.Context, campaignID string) (approved, pending []*Member, err error)

	// CampaignsForUser returns the campaigns a user belongs to, split into
	// approved and pending memberships
	CampaignsForUser(ctx context.Context, userID string) (approved []*entities.Campaign, pending []*entities.CampaignMembership, err error)

	// Browse returns active campaigns a user has no membership in
	Browse(ctx context.Context, userID string) ([]*entities.Campaign, error)

	// CanAccess reports whether a user may view a campaign: admins always,
	// the DM, and approved members
	CanAccess(ctx context.Context, campaign *entities.Campaign, user *entities.User) (bool, error)
}
