package templates

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
	mu        sync.RWMutex
	templates map[string]*entities.CharacterTemplate
}

// NewInMemory creates an in-memory template repository
func NewInMemory() Repository {
	return &inMemoryRepo{
		templates: make(map[string]*entities.CharacterTemplate),
	}
}

func (r *inMemoryRepo) Create(ctx context.Context, template *entities.CharacterTemplate) error {
	if template == nil {
		return apperr.InvalidArgument("template cannot be nil")
	}
	if template.ID == "" {
		return apperr.InvalidArgument("template ID is required")
	}
	if template.OwnerID == "" {
		return apperr.InvalidArgument("template owner ID is required")
	}
	if template.Name == "" {
		return apperr.InvalidArgument("template name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.templates[template.ID]; ok {
		return apperr.AlreadyExistsf("template with ID '%s' already exists", template.ID)
	}

	template.CreatedAt = time.Now().UTC()

	stored := *template
	r.templates[template.ID] = &stored
	return nil
}

func (r *inMemoryRepo) Get(ctx context.Context, id string) (*entities.CharacterTemplate, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("template ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	template, ok := r.templates[id]
	if !ok {
		return nil, apperr.NotFoundf("template with ID '%s' not found", id)
	}

	copied := *template
	return &copied, nil
}

func (r *inMemoryRepo) GetByOwner(ctx context.Context, ownerID string) ([]*entities.CharacterTemplate, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.CharacterTemplate, 0)
	for _, t := range r.templates {
		if t.OwnerID == ownerID {
			copied := *t
			result = append(result, &copied)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *inMemoryRepo) Update(ctx context.Context, template *entities.CharacterTemplate) error {
	if template == nil {
		return apperr.InvalidArgument("template cannot be nil")
	}
	if template.ID == "" {
		return apperr.InvalidArgument("template ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.templates[template.ID]
	if !ok {
		return apperr.NotFoundf("template with ID '%s' not found", template.ID)
	}
	if existing.OwnerID != template.OwnerID {
		return apperr.InvalidArgument("template owner cannot be changed")
	}

	template.CreatedAt = existing.CreatedAt

	stored := *template
	r.templates[template.ID] = &stored
	return nil
}

func (r *inMemoryRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("template ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.templates[id]; !ok {
		return apperr.NotFoundf("template with ID '%s' not found", id)
	}

	delete(r.templates, id)
	return nil
}
