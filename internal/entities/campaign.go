package entities

import "time"

// Campaign is a game run by a DM that players join through approval.
type Campaign struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DMID        string    `json:"dm_id"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CampaignMembership links a user to a campaign. A membership starts
// unapproved; the campaign's DM (or an admin) approves it. One membership per
// (campaign, user) pair.
type CampaignMembership struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	UserID     string    `json:"user_id"`
	Role       Role      `json:"role"`
	Approved   bool      `json:"approved"`
	JoinedAt   time.Time `json:"joined_at"`
}
