package template

import (
	"context"

	"github.com/characterforge/characterforge/internal/entities"
)

// Service manages the template library: reusable character builds saved from
// existing characters and loaded back into the wizard.
type Service interface {
	// SaveFromCharacter snapshots a character into a template owned by the
	// actor. Template names are unique per owner.
	SaveFromCharacter(ctx context.Context, actor *entities.User, characterID, name, description string) (*entities.CharacterTemplate, error)

	// List returns the actor's templates of one kind, most-used first
	List(ctx context.Context, ownerID string, npcTemplates bool) ([]*entities.CharacterTemplate, error)

	// Use marks a template used and returns it for the wizard to preload
	Use(ctx context.Context, actor *entities.User, templateID string) (*entities.CharacterTemplate, error)

	// Delete removes a template; only the owner or an admin may
	Delete(ctx context.Context, actor *entities.User, templateID string) error
}
