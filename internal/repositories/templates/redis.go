package templates

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
)

// redisRepo implements Repository using Redis. Templates are stored as JSON
// under template:{id}; owner:{id}:templates indexes an owner's templates.
type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed template repository
func NewRedis(client redis.UniversalClient) Repository {
	if client == nil {
		panic("redis client cannot be nil")
	}
	return &redisRepo{client: client}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("template:%s", id)
}

func (r *redisRepo) ownerTemplatesKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:templates", ownerID)
}

func (r *redisRepo) Create(ctx context.Context, template *entities.CharacterTemplate) error {
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

	exists, err := r.client.Exists(ctx, r.key(template.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check template existence: %w", err)
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("template with ID '%s' already exists", template.ID)
	}

	template.CreatedAt = time.Now().UTC()

	jsonData, err := json.Marshal(template)
	if err != nil {
		return fmt.Errorf("failed to marshal template: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(template.ID), jsonData, 0)
	pipe.SAdd(ctx, r.ownerTemplatesKey(template.OwnerID), template.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*entities.CharacterTemplate, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("template ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("template with ID '%s' not found", id).
			WithMeta("template_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	var template entities.CharacterTemplate
	if err := json.Unmarshal(jsonData, &template); err != nil {
		return nil, fmt.Errorf("failed to unmarshal template: %w", err)
	}

	return &template, nil
}

func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*entities.CharacterTemplate, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerTemplatesKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list template IDs: %w", err)
	}

	result := make([]*entities.CharacterTemplate, 0, len(ids))
	for _, id := range ids {
		template, err := r.Get(ctx, id)
		if err != nil {
			if apperr.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		result = append(result, template)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *redisRepo) Update(ctx context.Context, template *entities.CharacterTemplate) error {
	if template == nil {
		return apperr.InvalidArgument("template cannot be nil")
	}
	if template.ID == "" {
		return apperr.InvalidArgument("template ID is required")
	}

	existing, err := r.Get(ctx, template.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != template.OwnerID {
		return apperr.InvalidArgument("template owner cannot be changed")
	}

	template.CreatedAt = existing.CreatedAt

	jsonData, err := json.Marshal(template)
	if err != nil {
		return fmt.Errorf("failed to marshal template: %w", err)
	}

	if err := r.client.Set(ctx, r.key(template.ID), jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}

	return nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	template, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.ownerTemplatesKey(template.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	return nil
}
