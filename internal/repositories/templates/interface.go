package templates

import (
	"context"

	"github.com/characterforge/characterforge/internal/entities"
)

// Repository defines the interface for character-template persistence.
type Repository interface {
	// Create stores a new template
	Create(ctx context.Context, template *entities.CharacterTemplate) error

	// Get retrieves a template by ID
	Get(ctx context.Context, id string) (*entities.CharacterTemplate, error)

	// GetByOwner retrieves all templates owned by a user
	GetByOwner(ctx context.Context, ownerID string) ([]*entities.CharacterTemplate, error)

	// Update updates an existing template
	Update(ctx context.Context, template *entities.CharacterTemplate) error

	// Delete removes a template
	Delete(ctx context.Context, id string) error
}
