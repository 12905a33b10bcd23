package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperr "github.com/characterforge/characterforge/internal/errors"
	"github.com/characterforge/characterforge/internal/uuid"
)

// redisStore keeps sessions under session:{token} with a TTL, and a
// user:{id}:sessions set so all of a user's sessions can be revoked at once.
type redisStore struct {
	client      redis.UniversalClient
	idGenerator uuid.Generator
	ttl         time.Duration
}

type RedisConfig struct {
	Client      redis.UniversalClient
	IDGenerator uuid.Generator
	TTL         time.Duration
}

// NewRedis creates a Redis-backed session store
func NewRedis(cfg *RedisConfig) Store {
	if cfg == nil {
		panic("session config cannot be nil")
	}
	if cfg.Client == nil {
		panic("session store requires a redis client")
	}
	if cfg.IDGenerator == nil {
		panic("session store requires an ID generator")
	}
	if cfg.TTL <= 0 {
		panic("session TTL must be positive")
	}
	return &redisStore{
		client:      cfg.Client,
		idGenerator: cfg.IDGenerator,
		ttl:         cfg.TTL,
	}
}

func (s *redisStore) key(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (s *redisStore) userSessionsKey(userID string) string {
	return fmt.Sprintf("user:%s:sessions", userID)
}

func (s *redisStore) Create(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", apperr.InvalidArgument("user ID is required")
	}

	token := s.idGenerator.New()

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(token), userID, s.ttl)
	pipe.SAdd(ctx, s.userSessionsKey(userID), token)
	pipe.Expire(ctx, s.userSessionsKey(userID), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return token, nil
}

func (s *redisStore) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", apperr.Unauthenticated("no session token")
	}

	userID, err := s.client.Get(ctx, s.key(token)).Result()
	if err == redis.Nil {
		return "", apperr.Unauthenticated("session expired or unknown")
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve session: %w", err)
	}

	return userID, nil
}

func (s *redisStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	userID, err := s.client.Get(ctx, s.key(token)).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(token))
	pipe.SRem(ctx, s.userSessionsKey(userID), token)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}

	return nil
}

func (s *redisStore) DestroyAllForUser(ctx context.Context, userID string) error {
	if userID == "" {
		return apperr.InvalidArgument("user ID is required")
	}

	tokens, err := s.client.SMembers(ctx, s.userSessionsKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	pipe := s.client.Pipeline()
	for _, token := range tokens {
		pipe.Del(ctx, s.key(token))
	}
	pipe.Del(ctx, s.userSessionsKey(userID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to destroy sessions: %w", err)
	}

	return nil
}
