package user

import (
	"context"

	"github.com/characterforge/characterforge/internal/entities"
)

// CreateUserInput holds the fields for a new account.
type CreateUserInput struct {
	Username    string
	Password    string
	Role        entities.Role
	DisplayName string
}

// Service manages accounts, authentication, and role assignment.
type Service interface {
	// FirstLaunch reports whether no admin account exists yet
	FirstLaunch(ctx context.Context) (bool, error)

	// SetupAdmin creates the initial admin account. Fails once any admin
	// exists.
	SetupAdmin(ctx context.Context, username, password, displayName string) (*entities.User, error)

	// Authenticate checks credentials. A non-empty roleHint must match the
	// account's actual role.
	Authenticate(ctx context.Context, username, password string, roleHint entities.Role) (*entities.User, error)

	// CreateUser creates an account with an explicit role (admin operation)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entities.User, error)

	// SetRole changes a user's role. Demoting the last admin fails.
	SetRole(ctx context.Context, userID string, role entities.Role) (*entities.User, error)

	// ResetPassword replaces a user's password
	ResetPassword(ctx context.Context, userID, password string) error

	// DeleteUser removes an account. Actors cannot delete themselves, and
	// the last admin cannot be deleted.
	DeleteUser(ctx context.Context, actorID, userID string) error

	// Get retrieves a user by ID
	Get(ctx context.Context, id string) (*entities.User, error)

	// List retrieves every user, ordered by role then username
	List(ctx context.Context) ([]*entities.User, error)
}
