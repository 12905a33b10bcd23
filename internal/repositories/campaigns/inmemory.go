package campaigns

import (
	"context"
	"sync"
	"time"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the campaign
// repository.
type InMemoryRepository struct {
	mu        sync.RWMutex
	campaigns map[string]*entities.Campaign
}

// NewInMemory creates a new in-memory campaign repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		campaigns: make(map[string]*entities.Campaign),
	}
}

// Create stores a new campaign
func (r *InMemoryRepository) Create(ctx context.Context, campaign *entities.Campaign) error {
	if campaign == nil {
		return apperr.InvalidArgument("campaign cannot be nil")
	}
	if campaign.ID == "" {
		return apperr.InvalidArgument("campaign ID is required")
	}
	if campaign.DMID == "" {
		return apperr.InvalidArgument("campaign DM ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.campaigns[campaign.ID]; exists {
		return apperr.AlreadyExistsf("campaign with ID '%s' already exists", campaign.ID)
	}

	campaign.CreatedAt = time.Now().UTC()

	campaignCopy := *campaign
	r.campaigns[campaign.ID] = &campaignCopy

	return nil
}

// Get retrieves a campaign by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*entities.Campaign, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("campaign ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	campaign, exists := r.campaigns[id]
	if !exists {
		return nil, apperr.NotFoundf("campaign with ID '%s' not found", id)
	}

	campaignCopy := *campaign
	return &campaignCopy, nil
}

// GetByDM retrieves all campaigns run by a specific DM
func (r *InMemoryRepository) GetByDM(ctx context.Context, dmID string) ([]*entities.Campaign, error) {
	if dmID == "" {
		return nil, apperr.InvalidArgument("DM ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*entities.Campaign
	for _, campaign := range r.campaigns {
		if campaign.DMID == dmID {
			campaignCopy := *campaign
			result = append(result, &campaignCopy)
		}
	}

	return result, nil
}

// List retrieves all campaigns
func (r *InMemoryRepository) List(ctx context.Context) ([]*entities.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Campaign, 0, len(r.campaigns))
	for _, campaign := range r.campaigns {
		campaignCopy := *campaign
		result = append(result, &campaignCopy)
	}

	return result, nil
}

// Update updates an existing campaign
func (r *InMemoryRepository) Update(ctx context.Context, campaign *entities.Campaign) error {
	if campaign == nil {
		return apperr.InvalidArgument("campaign cannot be nil")
	}
	if campaign.ID == "" {
		return apperr.InvalidArgument("campaign ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.campaigns[campaign.ID]; !exists {
		return apperr.NotFoundf("campaign with ID '%s' not found", campaign.ID)
	}

	campaignCopy := *campaign
	r.campaigns[campaign.ID] = &campaignCopy

	return nil
}

// Delete removes a campaign
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("campaign ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.campaigns[id]; !exists {
		return apperr.NotFoundf("campaign with ID '%s' not found", id)
	}

	delete(r.campaigns, id)

	return nil
}
