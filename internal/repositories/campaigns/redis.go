package campaigns

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
)

// redisRepo implements Repository using Redis. Campaigns are stored as JSON
// under campaign:{id}; dm:{id}:campaigns indexes a DM's campaigns and the
// "campaigns" set indexes every ID.
type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed campaign repository
func NewRedis(client redis.UniversalClient) Repository {
	if client == nil {
		panic("redis client cannot be nil")
	}
	return &redisRepo{client: client}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("campaign:%s", id)
}

func (r *redisRepo) dmCampaignsKey(dmID string) string {
	return fmt.Sprintf("dm:%s:campaigns", dmID)
}

const allCampaignsKey = "campaigns"

func (r *redisRepo) Create(ctx context.Context, campaign *entities.Campaign) error {
	if campaign == nil {
		return apperr.InvalidArgument("campaign cannot be nil")
	}
	if campaign.ID == "" {
		return apperr.InvalidArgument("campaign ID is required")
	}
	if campaign.DMID == "" {
		return apperr.InvalidArgument("campaign DM ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(campaign.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check campaign existence: %w", err)
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("campaign with ID '%s' already exists", campaign.ID)
	}

	campaign.CreatedAt = time.Now().UTC()

	jsonData, err := json.Marshal(campaign)
	if err != nil {
		return fmt.Errorf("failed to marshal campaign: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(campaign.ID), jsonData, 0)
	pipe.SAdd(ctx, r.dmCampaignsKey(campaign.DMID), campaign.ID)
	pipe.SAdd(ctx, allCampaignsKey, campaign.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Campaign, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("campaign ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("campaign with ID '%s' not found", id).
			WithMeta("campaign_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	var campaign entities.Campaign
	if err := json.Unmarshal(jsonData, &campaign); err != nil {
		return nil, fmt.Errorf("failed to unmarshal campaign: %w", err)
	}

	return &campaign, nil
}

func (r *redisRepo) GetByDM(ctx context.Context, dmID string) ([]*entities.Campaign, error) {
	if dmID == "" {
		return nil, apperr.InvalidArgument("DM ID is required")
	}
	return r.getSet(ctx, r.dmCampaignsKey(dmID))
}

func (r *redisRepo) List(ctx context.Context) ([]*entities.Campaign, error) {
	return r.getSet(ctx, allCampaignsKey)
}

func (r *redisRepo) getSet(ctx context.Context, setKey string) ([]*entities.Campaign, error) {
	ids, err := r.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list campaign IDs: %w", err)
	}

	campaigns := make([]*entities.Campaign, 0, len(ids))
	for _, id := range ids {
		campaign, err := r.Get(ctx, id)
		if err != nil {
			if apperr.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, nil
}

func (r *redisRepo) Update(ctx context.Context, campaign *entities.Campaign) error {
	if campaign == nil {
		return apperr.InvalidArgument("campaign cannot be nil")
	}
	if campaign.ID == "" {
		return apperr.InvalidArgument("campaign ID is required")
	}

	if _, err := r.Get(ctx, campaign.ID); err != nil {
		return err
	}

	jsonData, err := json.Marshal(campaign)
	if err != nil {
		return fmt.Errorf("failed to marshal campaign: %w", err)
	}

	if err := r.client.Set(ctx, r.key(campaign.ID), jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
	}

	return nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	campaign, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.dmCampaignsKey(campaign.DMID), id)
	pipe.SRem(ctx, allCampaignsKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	return nil
}
