package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
)

// redisRepo implements Repository using Redis. Characters are stored as JSON
// under character:{id}; owner:{id}:characters and campaign:{id}:characters
// index by owner and campaign, and the "characters" set indexes every ID.
type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed character repository
func NewRedis(client redis.UniversalClient) Repository {
	if client == nil {
		panic("redis client cannot be nil")
	}
	return &redisRepo{client: client}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

func (r *redisRepo) ownerCharactersKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

func (r *redisRepo) campaignCharactersKey(campaignID string) string {
	return fmt.Sprintf("campaign:%s:characters", campaignID)
}

const allCharactersKey = "characters"

// fetchConcurrency bounds the fan-out when hydrating an index set.
const fetchConcurrency = 8

func (r *redisRepo) Create(ctx context.Context, character *entities.Character) error {
	if character == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if character.ID == "" {
		return apperr.InvalidArgument("character ID is required")
	}
	if character.Name == "" {
		return apperr.InvalidArgument("character name is required")
	}

	exists, err := r.client.Exists(ctx, r.key(character.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("character with ID '%s' already exists", character.ID)
	}

	now := time.Now().UTC()
	character.CreatedAt = now
	character.UpdatedAt = now

	jsonData, err := json.Marshal(character)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(character.ID), jsonData, 0)
	pipe.SAdd(ctx, allCharactersKey, character.ID)
	if character.OwnerID != "" {
		pipe.SAdd(ctx, r.ownerCharactersKey(character.OwnerID), character.ID)
	}
	if character.CampaignID != "" {
		pipe.SAdd(ctx, r.campaignCharactersKey(character.CampaignID), character.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var character entities.Character
	if err := json.Unmarshal(jsonData, &character); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}

	return &character, nil
}

func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*entities.Character, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}
	return r.getSet(ctx, r.ownerCharactersKey(ownerID))
}

func (r *redisRepo) GetByCampaign(ctx context.Context, campaignID string) ([]*entities.Character, error) {
	if campaignID == "" {
		return nil, apperr.InvalidArgument("campaign ID is required")
	}
	return r.getSet(ctx, r.campaignCharactersKey(campaignID))
}

func (r *redisRepo) List(ctx context.Context) ([]*entities.Character, error) {
	return r.getSet(ctx, allCharactersKey)
}

// getSet hydrates an index set, fetching characters concurrently. Stale
// index entries are skipped.
func (r *redisRepo) getSet(ctx context.Context, setKey string) ([]*entities.Character, error) {
	ids, err := r.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list character IDs: %w", err)
	}

	var mu sync.Mutex
	result := make([]*entities.Character, 0, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			character, err := r.Get(gctx, id)
			if err != nil {
				if apperr.IsNotFound(err) {
					return nil
				}
				return err
			}
			mu.Lock()
			result = append(result, character)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *redisRepo) Update(ctx context.Context, character *entities.Character) error {
	if character == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if character.ID == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	existing, err := r.Get(ctx, character.ID)
	if err != nil {
		return err
	}

	character.CreatedAt = existing.CreatedAt
	character.UpdatedAt = time.Now().UTC()

	jsonData, err := json.Marshal(character)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(character.ID), jsonData, 0)
	if existing.OwnerID != character.OwnerID {
		if existing.OwnerID != "" {
			pipe.SRem(ctx, r.ownerCharactersKey(existing.OwnerID), character.ID)
		}
		if character.OwnerID != "" {
			pipe.SAdd(ctx, r.ownerCharactersKey(character.OwnerID), character.ID)
		}
	}
	if existing.CampaignID != character.CampaignID {
		if existing.CampaignID != "" {
			pipe.SRem(ctx, r.campaignCharactersKey(existing.CampaignID), character.ID)
		}
		if character.CampaignID != "" {
			pipe.SAdd(ctx, r.campaignCharactersKey(character.CampaignID), character.ID)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}

	return nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	character, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, allCharactersKey, id)
	if character.OwnerID != "" {
		pipe.SRem(ctx, r.ownerCharactersKey(character.OwnerID), id)
	}
	if character.CampaignID != "" {
		pipe.SRem(ctx, r.campaignCharactersKey(character.CampaignID), id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}
