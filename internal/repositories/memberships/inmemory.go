package memberships

import (
	"context"
	"sync"
	"time"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
)

// inMemoryRepo implements Repository with an in-process map. Used when no
// Redis is configured and in tests.
type inMemoryRepo struct {
	mu          sync.RWMutex
	memberships map[string]*entities.CampaignMembership
}

// NewInMemory creates an in-memory membership repository
func NewInMemory() Repository {
	return &inMemoryRepo{
		memberships: make(map[string]*entities.CampaignMembership),
	}
}

func (r *inMemoryRepo) Create(ctx context.Context, membership *entities.CampaignMembership) error {
	if membership == nil {
		return apperr.InvalidArgument("membership cannot be nil")
	}
	if membership.ID == "" {
		return apperr.InvalidArgument("membership ID is required")
	}
	if membership.CampaignID == "" {
		return apperr.InvalidArgument("membership campaign ID is required")
	}
	if membership.UserID == "" {
		return apperr.InvalidArgument("membership user ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.memberships[membership.ID]; ok {
		return apperr.AlreadyExistsf("membership with ID '%s' already exists", membership.ID)
	}
	for _, m := range r.memberships {
		if m.CampaignID == membership.CampaignID && m.UserID == membership.UserID {
			return apperr.AlreadyExistsf("user '%s' is already a member of campaign '%s'",
				membership.UserID, membership.CampaignID)
		}
	}

	membership.JoinedAt = time.Now().UTC()

	stored := *membership
	r.memberships[membership.ID] = &stored
	return nil
}

func (r *inMemoryRepo) Get(ctx context.Context, id string) (*entities.CampaignMembership, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("membership ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	membership, ok := r.memberships[id]
	if !ok {
		return nil, apperr.NotFoundf("membership with ID '%s' not found", id)
	}

	copied := *membership
	return &copied, nil
}

func (r *inMemoryRepo) GetByCampaignAndUser(ctx context.Context, campaignID, userID string) (*entities.CampaignMembership, error) {
	if campaignID == "" {
		return nil, apperr.InvalidArgument("campaign ID is required")
	}
	if userID == "" {
		return nil, apperr.InvalidArgument("user ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.memberships {
		if m.CampaignID == campaignID && m.UserID == userID {
			copied := *m
			return &copied, nil
		}
	}

	return nil, apperr.NotFoundf("user '%s' has no membership in campaign '%s'", userID, campaignID)
}

func (r *inMemoryRepo) GetByCampaign(ctx context.Context, campaignID string) ([]*entities.CampaignMembership, error) {
	if campaignID == "" {
		return nil, apperr.InvalidArgument("campaign ID is required")
	}
	return r.filter(func(m *entities.CampaignMembership) bool {
		return m.CampaignID == campaignID
	}), nil
}

func (r *inMemoryRepo) GetByUser(ctx context.Context, userID string) ([]*entities.CampaignMembership, error) {
	if userID == "" {
		return nil, apperr.InvalidArgument("user ID is required")
	}
	return r.filter(func(m *entities.CampaignMembership) bool {
		return m.UserID == userID
	}), nil
}

func (r *inMemoryRepo) filter(keep func(*entities.CampaignMembership) bool) []*entities.CampaignMembership {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.CampaignMembership, 0)
	for _, m := range r.memberships {
		if keep(m) {
			copied := *m
			result = append(result, &copied)
		}
	}
	return result
}

func (r *inMemoryRepo) Update(ctx context.Context, membership *entities.CampaignMembership) error {
	if membership == nil {
		return apperr.InvalidArgument("membership cannot be nil")
	}
	if membership.ID == "" {
		return apperr.InvalidArgument("membership ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.memberships[membership.ID]
	if !ok {
		return apperr.NotFoundf("membership with ID '%s' not found", membership.ID)
	}
	if existing.CampaignID != membership.CampaignID || existing.UserID != membership.UserID {
		return apperr.InvalidArgument("membership campaign and user cannot be changed")
	}

	stored := *membership
	r.memberships[membership.ID] = &stored
	return nil
}

func (r *inMemoryRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("membership ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.memberships[id]; !ok {
		return apperr.NotFoundf("membership with ID '%s' not found", id)
	}

	delete(r.memberships, id)
	return nil
}
