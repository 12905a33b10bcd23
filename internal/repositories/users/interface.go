package users

import (
	"context"

	"github.com/characterforge/characterforge/internal/entities"
)

// Repository defines the interface for user persistence
type Repository interface {
	// Create stores a new user; usernames are unique
	Create(ctx context.Context, user *entities.User) error

	// Get retrieves a user by ID
	Get(ctx context.Context, id string) (*entities.User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*entities.User, error)

	// List retrieves all users
	List(ctx context.Context) ([]*entities.User, error)

	// CountByRole counts users holding the given role
	CountByRole(ctx context.Context, role entities.Role) (int, error)

	// Update updates an existing user
	Update(ctx context.Context, user *entities.User) error

	// Delete removes a user
	Delete(ctx context.Context, id string) error
}
