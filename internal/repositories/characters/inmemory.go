package characters

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
)

// inMemoryRepo implements Repository with an in-process map. Used when no
// Redis is configured and in tests.
type inMemoryRepo struct {
	mu         sync.RWMutex
	characters map[string]*entities.Character
}

// NewInMemory creates an in-memory character repository
func NewInMemory() Repository {
	return &inMemoryRepo{
		characters: make(map[string]*entities.Character),
	}
}

func (r *inMemoryRepo) Create(ctx context.Context, character *entities.Character) error {
	if character == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if character.ID == "" {
		return apperr.InvalidArgument("character ID is required")
	}
	if character.Name == "" {
		return apperr.InvalidArgument("character name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.characters[character.ID]; ok {
		return apperr.AlreadyExistsf("character with ID '%s' already exists", character.ID)
	}

	now := time.Now().UTC()
	character.CreatedAt = now
	character.UpdatedAt = now

	stored := *character
	r.characters[character.ID] = &stored
	return nil
}

func (r *inMemoryRepo) Get(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	character, ok := r.characters[id]
	if !ok {
		return nil, apperr.NotFoundf("character with ID '%s' not found", id)
	}

	copied := *character
	return &copied, nil
}

func (r *inMemoryRepo) GetByOwner(ctx context.Context, ownerID string) ([]*entities.Character, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}
	return r.filter(func(c *entities.Character) bool {
		return c.OwnerID == ownerID
	}), nil
}

func (r *inMemoryRepo) GetByCampaign(ctx context.Context, campaignID string) ([]*entities.Character, error) {
	if campaignID == "" {
		return nil, apperr.InvalidArgument("campaign ID is required")
	}
	return r.filter(func(c *entities.Character) bool {
		return c.CampaignID == campaignID
	}), nil
}

func (r *inMemoryRepo) List(ctx context.Context) ([]*entities.Character, error) {
	return r.filter(func(*entities.Character) bool { return true }), nil
}

func (r *inMemoryRepo) filter(keep func(*entities.Character) bool) []*entities.Character {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Character, 0)
	for _, c := range r.characters {
		if keep(c) {
			copied := *c
			result = append(result, &copied)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result
}

func (r *inMemoryRepo) Update(ctx context.Context, character *entities.Character) error {
	if character == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if character.ID == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.characters[character.ID]
	if !ok {
		return apperr.NotFoundf("character with ID '%s' not found", character.ID)
	}

	character.CreatedAt = existing.CreatedAt
	character.UpdatedAt = time.Now().UTC()

	stored := *character
	r.characters[character.ID] = &stored
	return nil
}

func (r *inMemoryRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.characters[id]; !ok {
		return apperr.NotFoundf("character with ID '%s' not found", id)
	}

	delete(r.characters, id)
	return nil
}
