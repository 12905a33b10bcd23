package memberships

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
)

// redisRepo implements Repository using Redis. Memberships are stored as
// JSON under membership:{id}. campaign:{id}:members and user:{id}:memberships
// index memberships by campaign and by user, and the pair index
// membership:campaign:{cid}:user:{uid} enforces one membership per
// (campaign, user).
type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed membership repository
func NewRedis(client redis.UniversalClient) Repository {
	if client == nil {
		panic("redis client cannot be nil")
	}
	return &redisRepo{client: client}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("membership:%s", id)
}

func (r *redisRepo) pairKey(campaignID, userID string) string {
	return fmt.Sprintf("membership:campaign:%s:user:%s", campaignID, userID)
}

func (r *redisRepo) campaignMembersKey(campaignID string) string {
	return fmt.Sprintf("campaign:%s:members", campaignID)
}

func (r *redisRepo) userMembershipsKey(userID string) string {
	return fmt.Sprintf("user:%s:memberships", userID)
}

func (r *redisRepo) Create(ctx context.Context, membership *entities.CampaignMembership) error {
	if membership == nil {
		return apperr.InvalidArgument("membership cannot be nil")
	}
	if membership.ID == "" {
		return apperr.InvalidArgument("membership ID is required")
	}
	if membership.CampaignID == "" {
		return apperr.InvalidArgument("membership campaign ID is required")
	}
	if membership.UserID == "" {
		return apperr.InvalidArgument("membership user ID is required")
	}

	membership.JoinedAt = time.Now().UTC()

	jsonData, err := json.Marshal(membership)
	if err != nil {
		return fmt.Errorf("failed to marshal membership: %w", err)
	}

	// Claim the (campaign, user) pair first so a user cannot join twice.
	claimed, err := r.client.SetNX(ctx, r.pairKey(membership.CampaignID, membership.UserID), membership.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to claim membership: %w", err)
	}
	if !claimed {
		return apperr.AlreadyExistsf("user '%s' is already a member of campaign '%s'",
			membership.UserID, membership.CampaignID)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(membership.ID), jsonData, 0)
	pipe.SAdd(ctx, r.campaignMembersKey(membership.CampaignID), membership.ID)
	pipe.SAdd(ctx, r.userMembershipsKey(membership.UserID), membership.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create membership: %w", err)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*entities.CampaignMembership, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("membership ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("membership with ID '%s' not found", id).
			WithMeta("membership_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	var membership entities.CampaignMembership
	if err := json.Unmarshal(jsonData, &membership); err != nil {
		return nil, fmt.Errorf("failed to unmarshal membership: %w", err)
	}

	return &membership, nil
}

func (r *redisRepo) GetByCampaignAndUser(ctx context.Context, campaignID, userID string) (*entities.CampaignMembership, error) {
	if campaignID == "" {
		return nil, apperr.InvalidArgument("campaign ID is required")
	}
	if userID == "" {
		return nil, apperr.InvalidArgument("user ID is required")
	}

	id, err := r.client.Get(ctx, r.pairKey(campaignID, userID)).Result()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("user '%s' has no membership in campaign '%s'", userID, campaignID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve membership: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *redisRepo) GetByCampaign(ctx context.Context, campaignID string) ([]*entities.CampaignMembership, error) {
	if campaignID == "" {
		return nil, apperr.InvalidArgument("campaign ID is required")
	}
	return r.getSet(ctx, r.campaignMembersKey(campaignID))
}

func (r *redisRepo) GetByUser(ctx context.Context, userID string) ([]*entities.CampaignMembership, error) {
	if userID == "" {
		return nil, apperr.InvalidArgument("user ID is required")
	}
	return r.getSet(ctx, r.userMembershipsKey(userID))
}

func (r *redisRepo) getSet(ctx context.Context, setKey string) ([]*entities.CampaignMembership, error) {
	ids, err := r.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list membership IDs: %w", err)
	}

	result := make([]*entities.CampaignMembership, 0, len(ids))
	for _, id := range ids {
		membership, err := r.Get(ctx, id)
		if err != nil {
			if apperr.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		result = append(result, membership)
	}

	return result, nil
}

func (r *redisRepo) Update(ctx context.Context, membership *entities.CampaignMembership) error {
	if membership == nil {
		return apperr.InvalidArgument("membership cannot be nil")
	}
	if membership.ID == "" {
		return apperr.InvalidArgument("membership ID is required")
	}

	existing, err := r.Get(ctx, membership.ID)
	if err != nil {
		return err
	}
	if existing.CampaignID != membership.CampaignID || existing.UserID != membership.UserID {
		return apperr.InvalidArgument("membership campaign and user cannot be changed")
	}

	jsonData, err := json.Marshal(membership)
	if err != nil {
		return fmt.Errorf("failed to marshal membership: %w", err)
	}

	if err := r.client.Set(ctx, r.key(membership.ID), jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to update membership: %w", err)
	}

	return nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	membership, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.Del(ctx, r.pairKey(membership.CampaignID, membership.UserID))
	pipe.SRem(ctx, r.campaignMembersKey(membership.CampaignID), id)
	pipe.SRem(ctx, r.userMembershipsKey(membership.UserID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}

	return nil
}
