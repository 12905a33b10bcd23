package users

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
)

// redisRepo implements Repository using Redis. Users are stored as JSON under
// user:{id}; username:{name} maps usernames to IDs for uniqueness and login
// lookups; the "users" set indexes every ID.
type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed user repository
func NewRedis(client redis.UniversalClient) Repository {
	if client == nil {
		panic("redis client cannot be nil")
	}
	return &redisRepo{client: client}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("user:%s", id)
}

func (r *redisRepo) usernameKey(username string) string {
	return fmt.Sprintf("username:%s", username)
}

const allUsersKey = "users"

func (r *redisRepo) Create(ctx context.Context, user *entities.User) error {
	if user == nil {
		return apperr.InvalidArgument("user cannot be nil")
	}
	if user.ID == "" {
		return apperr.InvalidArgument("user ID is required")
	}
	if user.Username == "" {
		return apperr.InvalidArgument("username is required")
	}

	// Claim the username first so duplicates fail atomically.
	claimed, err := r.client.SetNX(ctx, r.usernameKey(user.Username), user.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to claim username: %w", err)
	}
	if !claimed {
		return apperr.AlreadyExistsf("username '%s' already exists", user.Username).
			WithMeta("username", user.Username)
	}

	user.CreatedAt = time.Now().UTC()

	jsonData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(user.ID), jsonData, 0)
	pipe.SAdd(ctx, allUsersKey, user.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*entities.User, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("user ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("user with ID '%s' not found", id).
			WithMeta("user_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user entities.User
	if err := json.Unmarshal(jsonData, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

func (r *redisRepo) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	if username == "" {
		return nil, apperr.InvalidArgument("username is required")
	}

	id, err := r.client.Get(ctx, r.usernameKey(username)).Result()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("user '%s' not found", username).
			WithMeta("username", username)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up username: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *redisRepo) List(ctx context.Context) ([]*entities.User, error) {
	ids, err := r.client.SMembers(ctx, allUsersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list user IDs: %w", err)
	}

	users := make([]*entities.User, 0, len(ids))
	for _, id := range ids {
		user, err := r.Get(ctx, id)
		if err != nil {
			if apperr.IsNotFound(err) {
				continue // index can briefly outlive a deleted record
			}
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *redisRepo) CountByRole(ctx context.Context, role entities.Role) (int, error) {
	users, err := r.List(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, user := range users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

func (r *redisRepo) Update(ctx context.Context, user *entities.User) error {
	if user == nil {
		return apperr.InvalidArgument("user cannot be nil")
	}
	if user.ID == "" {
		return apperr.InvalidArgument("user ID is required")
	}

	existing, err := r.Get(ctx, user.ID)
	if err != nil {
		return err
	}
	if existing.Username != user.Username {
		return apperr.InvalidArgument("username cannot be changed")
	}

	jsonData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	if err := r.client.Set(ctx, r.key(user.ID), jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	user, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.Del(ctx, r.usernameKey(user.Username))
	pipe.SRem(ctx, allUsersKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
