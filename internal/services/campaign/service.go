package campaign

import (
	"context"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
	"github.com/characterforge/characterforge/internal/repositories/campaigns"
	"github.com/characterforge/characterforge/internal/repositories/memberships"
	"github.com/characterforge/characterforge/internal/repositories/users"
	"github.com/characterforge/characterforge/internal/uuid"
)

type service struct {
	campaignRepo   campaigns.Repository
	membershipRepo memberships.Repository
	userRepo       users.Repository
	idGenerator    uuid.Generator
}

// ServiceConfig holds configuration for the campaign service
type ServiceConfig struct {
	CampaignRepository   campaigns.Repository
	MembershipRepository memberships.Repository
	UserRepository       users.Repository
	IDGenerator          uuid.Generator
}

// NewService creates a new campaign service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("campaign service config cannot be nil")
	}
	if cfg.CampaignRepository == nil {
		panic("campaign service requires a campaign repository")
	}
	if cfg.MembershipRepository == nil {
		panic("campaign service requires a membership repository")
	}
	if cfg.UserRepository == nil {
		panic("campaign service requires a user repository")
	}
	if cfg.IDGenerator == nil {
		panic("campaign service requires an ID generator")
	}
	return &service{
		campaignRepo:   cfg.CampaignRepository,
		membershipRepo: cfg.MembershipRepository,
		userRepo:       cfg.UserRepository,
		idGenerator:    cfg.IDGenerator,
	}
}

func (s *service) Create(ctx context.Context, dmID, name, description string) (*entities.Campaign, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.InvalidArgument("campaign name is required")
	}
	if dmID == "" {
		return nil, apperr.InvalidArgument("DM ID is required")
	}

	campaign := &entities.Campaign{
		ID:          s.idGenerator.New(),
		Name:        name,
		Description: strings.TrimSpace(description),
		DMID:        dmID,
		IsActive:    true,
	}
	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}

	// The DM joins their own campaign pre-approved.
	membership := &entities.CampaignMembership{
		ID:         s.idGenerator.New(),
		CampaignID: campaign.ID,
		UserID:     dmID,
		Role:       entities.RoleDM,
		Approved:   true,
	}
	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return nil, err
	}

	return campaign, nil
}

func (s *service) Get(ctx context.Context, id string) (*entities.Campaign, error) {
	return s.campaignRepo.Get(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*entities.Campaign, error) {
	list, err := s.campaignRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(list)
	return list, nil
}

func (s *service) ListByDM(ctx context.Context, dmID string) ([]*entities.Campaign, error) {
	list, err := s.campaignRepo.GetByDM(ctx, dmID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(list)
	return list, nil
}

func sortNewestFirst(list []*entities.Campaign) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

func (s *service) Delete(ctx context.Context, id string) error {
	members, err := s.membershipRepo.GetByCampaign(ctx, id)
	if err != nil {
		return err
	}
	for _, m := range members {
		if err := s.membershipRepo.Delete(ctx, m.ID); err != nil && !apperr.IsNotFound(err) {
			return err
		}
	}
	return s.campaignRepo.Delete(ctx, id)
}

func (s *service) Join(ctx context.Context, campaignID, userID string) (*entities.CampaignMembership, error) {
	if _, err := s.campaignRepo.Get(ctx, campaignID); err != nil {
		return nil, err
	}

	membership := &entities.CampaignMembership{
		ID:         s.idGenerator.New(),
		CampaignID: campaignID,
		UserID:     userID,
		Role:       entities.RolePlayer,
		Approved:   false,
	}
	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return nil, err
	}

	return membership, nil
}

func (s *service) Approve(ctx context.Context, campaignID, userID string, actor *entities.User) error {
	if actor == nil {
		return apperr.InvalidArgument("actor is required")
	}

	target, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if target.Role == entities.RoleDM && actor.Role != entities.RoleAdmin {
		return apperr.PermissionDenied("DMs cannot approve other DMs")
	}

	membership, err := s.membershipRepo.GetByCampaignAndUser(ctx, campaignID, userID)
	if err != nil {
		return err
	}

	membership.Approved = true
	return s.membershipRepo.Update(ctx, membership)
}

func (s *service) Kick(ctx context.Context, campaignID, userID string) error {
	membership, err := s.membershipRepo.GetByCampaignAndUser(ctx, campaignID, userID)
	if err != nil {
		return err
	}
	return s.membershipRepo.Delete(ctx, membership.ID)
}

func (s *service) Members(ctx context.Context, campaignID string) (approved, pending []*Member, err error) {
	list, err := s.membershipRepo.GetByCampaign(ctx, campaignID)
	if err != nil {
		return nil, nil, err
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, membership := range list {
		membership := membership
		g.Go(func() error {
			user, err := s.userRepo.Get(gctx, membership.UserID)
			if err != nil {
				if apperr.IsNotFound(err) {
					return nil
				}
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			member := &Member{Membership: membership, User: user}
			if membership.Approved {
				approved = append(approved, member)
			} else {
				pending = append(pending, member)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	sortMembers(approved)
	sortMembers(pending)
	return approved, pending, nil
}

func sortMembers(members []*Member) {
	sort.Slice(members, func(i, j int) bool {
		return members[i].User.Username < members[j].User.Username
	})
}

func (s *service) CampaignsForUser(ctx context.Context, userID string) ([]*entities.Campaign, []*entities.CampaignMembership, error) {
	list, err := s.membershipRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	var approved []*entities.Campaign
	var pending []*entities.CampaignMembership
	for _, membership := range list {
		if !membership.Approved {
			pending = append(pending, membership)
			continue
		}
		campaign, err := s.campaignRepo.Get(ctx, membership.CampaignID)
		if err != nil {
			if apperr.IsNotFound(err) {
				continue
			}
			return nil, nil, err
		}
		approved = append(approved, campaign)
	}

	sortNewestFirst(approved)
	return approved, pending, nil
}

func (s *service) Browse(ctx context.Context, userID string) ([]*entities.Campaign, error) {
	memberships, err := s.membershipRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	mine := make(map[string]bool, len(memberships))
	for _, m := range memberships {
		mine[m.CampaignID] = true
	}

	all, err := s.campaignRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]*entities.Campaign, 0, len(all))
	for _, c := range all {
		if c.IsActive && !mine[c.ID] {
			available = append(available, c)
		}
	}

	sortNewestFirst(available)
	return available, nil
}

func (s *service) CanAccess(ctx context.Context, campaign *entities.Campaign, user *entities.User) (bool, error) {
	if campaign == nil || user == nil {
		return false, nil
	}
	if user.Role == entities.RoleAdmin || campaign.DMID == user.ID {
		return true, nil
	}

	membership, err := s.membershipRepo.GetByCampaignAndUser(ctx, campaign.ID, user.ID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return membership.Approved, nil
}
