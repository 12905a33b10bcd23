package users

import (
	"context"
	"sync"
	"time"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the user repository.
// Useful for testing and for running without Redis.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*entities.User
}

// NewInMemory creates a new in-memory user repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		users: make(map[string]*entities.User),
	}
}

// Create stores a new user
func (r *InMemoryRepository) Create(ctx context.Context, user *entities.User) error {
	if user == nil {
		return apperr.InvalidArgument("user cannot be nil")
	}
	if user.ID == "" {
		return apperr.InvalidArgument("user ID is required")
	}
	if user.Username == "" {
		return apperr.InvalidArgument("username is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; exists {
		return apperr.AlreadyExistsf("user with ID '%s' already exists", user.ID)
	}
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return apperr.AlreadyExistsf("username '%s' already exists", user.Username).
				WithMeta("username", user.Username)
		}
	}

	user.CreatedAt = time.Now().UTC()

	userCopy := *user
	r.users[user.ID] = &userCopy

	return nil
}

// Get retrieves a user by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*entities.User, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("user ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, apperr.NotFoundf("user with ID '%s' not found", id)
	}

	userCopy := *user
	return &userCopy, nil
}

// GetByUsername retrieves a user by username
func (r *InMemoryRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	if username == "" {
		return nil, apperr.InvalidArgument("username is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			userCopy := *user
			return &userCopy, nil
		}
	}

	return nil, apperr.NotFoundf("user '%s' not found", username)
}

// List retrieves all users
func (r *InMemoryRepository) List(ctx context.Context) ([]*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.User, 0, len(r.users))
	for _, user := range r.users {
		userCopy := *user
		result = append(result, &userCopy)
	}

	return result, nil
}

// CountByRole counts users holding the given role
func (r *InMemoryRepository) CountByRole(ctx context.Context, role entities.Role) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, user := range r.users {
		if user.Role == role {
			count++
		}
	}

	return count, nil
}

// Update updates an existing user
func (r *InMemoryRepository) Update(ctx context.Context, user *entities.User) error {
	if user == nil {
		return apperr.InvalidArgument("user cannot be nil")
	}
	if user.ID == "" {
		return apperr.InvalidArgument("user ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.users[user.ID]
	if !exists {
		return apperr.NotFoundf("user with ID '%s' not found", user.ID)
	}
	if existing.Username != user.Username {
		return apperr.InvalidArgument("username cannot be changed")
	}

	userCopy := *user
	r.users[user.ID] = &userCopy

	return nil
}

// Delete removes a user
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("user ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[id]; !exists {
		return apperr.NotFoundf("user with ID '%s' not found", id)
	}

	delete(r.users, id)

	return nil
}
