package campaign

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
	"github.com/characterforge/characterforge/internal/repositories/campaigns"
	"github.com/characterforge/characterforge/internal/repositories/memberships"
	"github.com/characterforge/characterforge/internal/repositories/users"
	"github.com/characterforge/characterforge/internal/uuid"
)

type CampaignServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	userRepo users.Repository
	service  Service

	admin  *entities.User
	dm     *entities.User
	player *entities.User
}

func (s *CampaignServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.userRepo = users.NewInMemory()
	s.service = NewService(&ServiceConfig{
		CampaignRepository:   campaigns.NewInMemory(),
		MembershipRepository: memberships.NewInMemory(),
		UserRepository:       s.userRepo,
		IDGenerator:          uuid.NewGoogleUUIDGenerator(),
	})

	s.admin = s.addUser("root", entities.RoleAdmin)
	s.dm = s.addUser("gm", entities.RoleDM)
	s.player = s.addUser("mika", entities.RolePlayer)
}

func (s *CampaignServiceTestSuite) addUser(username string, role entities.Role) *entities.User {
	user := &entities.User{
		ID:       "user-" + username,
		Username: username,
		Role:     role,
	}
	s.Require().NoError(s.userRepo.Create(s.ctx, user))
	return user
}

func (s *CampaignServiceTestSuite) TestCreateAddsDMMembership() {
	campaign, err := s.service.Create(s.ctx, s.dm.ID, "Lost Mine", "intro campaign")
	s.Require().NoError(err)
	s.True(campaign.IsActive)

	approved, pending, err := s.service.Members(s.ctx, campaign.ID)
	s.Require().NoError(err)
	s.Require().Len(approved, 1)
	s.Empty(pending)
	s.Equal(s.dm.ID, approved[0].User.ID)
	s.Equal(entities.RoleDM, approved[0].Membership.Role)
}

func (s *CampaignServiceTestSuite) TestCreateRequiresName() {
	_, err := s.service.Create(s.ctx, s.dm.ID, "   ", "")
	s.True(apperr.IsInvalidArgument(err))
}

func (s *CampaignServiceTestSuite) TestJoinAndApprove() {
	campaign, err := s.service.Create(s.ctx, s.dm.ID, "Lost Mine", "")
	s.Require().NoError(err)

	membership, err := s.service.Join(s.ctx, campaign.ID, s.player.ID)
	s.Require().NoError(err)
	s.False(membership.Approved)

	// Duplicate join request is rejected.
	_, err = s.service.Join(s.ctx, campaign.ID, s.player.ID)
	s.True(apperr.IsAlreadyExists(err))

	_, pending, err := s.service.Members(s.ctx, campaign.ID)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)

	s.Require().NoError(s.service.Approve(s.ctx, campaign.ID, s.player.ID, s.dm))

	approved, pending, err := s.service.Members(s.ctx, campaign.ID)
	s.Require().NoError(err)
	s.Len(approved, 2)
	s.Empty(pending)
}

func (s *CampaignServiceTestSuite) TestJoinUnknownCampaign() {
	_, err := s.service.Join(s.ctx, "nope", s.player.ID)
	s.True(apperr.IsNotFound(err))
}

func (s *CampaignServiceTestSuite) TestDMCannotApproveDM() {
	otherDM := s.addUser("gm2", entities.RoleDM)

	campaign, err := s.service.Create(s.ctx, s.dm.ID, "Lost Mine", "")
	s.Require().NoError(err)
	_, err = s.service.Join(s.ctx, campaign.ID, otherDM.ID)
	s.Require().NoError(err)

	err = s.service.Approve(s.ctx, campaign.ID, otherDM.ID, s.dm)
	s.True(apperr.IsPermissionDenied(err))

	// Admins can approve anyone.
	s.NoError(s.service.Approve(s.ctx, campaign.ID, otherDM.ID, s.admin))
}

func (s *CampaignServiceTestSuite) TestKick() {
	campaign, err := s.service.Create(s.ctx, s.dm.ID, "Lost Mine", "")
	s.Require().NoError(err)
	_, err = s.service.Join(s.ctx, campaign.ID, s.player.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.service.Kick(s.ctx, campaign.ID, s.player.ID))

	s.True(apperr.IsNotFound(s.service.Kick(s.ctx, campaign.ID, s.player.ID)))

	// A kicked player can request to join again.
	_, err = s.service.Join(s.ctx, campaign.ID, s.player.ID)
	s.NoError(err)
}

func (s *CampaignServiceTestSuite) TestCampaignsForUser() {
	first, err := s.service.Create(s.ctx, s.dm.ID, "Lost Mine", "")
	s.Require().NoError(err)
	second, err := s.service.Create(s.ctx, s.dm.ID, "Dragon Heist", "")
	s.Require().NoError(err)

	_, err = s.service.Join(s.ctx, first.ID, s.player.ID)
	s.Require().NoError(err)
	_, err = s.service.Join(s.ctx, second.ID, s.player.ID)
	s.Require().NoError(err)
	s.Require().NoError(s.service.Approve(s.ctx, first.ID, s.player.ID, s.dm))

	approved, pending, err := s.service.CampaignsForUser(s.ctx, s.player.ID)
	s.Require().NoError(err)
	s.Require().Len(approved, 1)
	s.Equal(first.ID, approved[0].ID)
	s.Require().Len(pending, 1)
	s.Equal(second.ID, pending[0].CampaignID)
}

func (s *CampaignServiceTestSuite) TestBrowseExcludesOwnMemberships() {
	first, err := s.service.Create(s.ctx, s.dm.ID, "Lost Mine", "")
	s.Require().NoError(err)
	_, err = s.service.Create(s.ctx, s.dm.ID, "Dragon Heist", "")
	s.Require().NoError(err)

	_, err = s.service.Join(s.ctx, first.ID, s.player.ID)
	s.Require().NoError(err)

	available, err := s.service.Browse(s.ctx, s.player.ID)
	s.Require().NoError(err)
	s.Require().Len(available, 1)
	s.Equal("Dragon Heist", available[0].Name)

	// The DM already belongs to both.
	available, err = s.service.Browse(s.ctx, s.dm.ID)
	s.Require().NoError(err)
	s.Empty(available)
}

func (s *CampaignServiceTestSuite) TestCanAccess() {
	campaign, err := s.service.Create(s.ctx, s.dm.ID, "Lost Mine", "")
	s.Require().NoError(err)

	check := func(user *entities.User) bool {
		ok, err := s.service.CanAccess(s.ctx, campaign, user)
		s.Require().NoError(err)
		return ok
	}

	s.True(check(s.admin))
	s.True(check(s.dm))
	s.False(check(s.player))

	_, err = s.service.Join(s.ctx, campaign.ID, s.player.ID)
	s.Require().NoError(err)
	s.False(check(s.player), "pending membership does not grant access")

	s.Require().NoError(s.service.Approve(s.ctx, campaign.ID, s.player.ID, s.dm))
	s.True(check(s.player))
}

func (s *CampaignServiceTestSuite) TestDeleteRemovesMemberships() {
	campaign, err := s.service.Create(s.ctx, s.dm.ID, "Lost Mine", "")
	s.Require().NoError(err)
	_, err = s.service.Join(s.ctx, campaign.ID, s.player.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(s.ctx, campaign.ID))

	_, err = s.service.Get(s.ctx, campaign.ID)
	s.True(apperr.IsNotFound(err))

	_, pending, err := s.service.CampaignsForUser(s.ctx, s.player.ID)
	s.Require().NoError(err)
	s.Empty(pending)
}

func TestCampaignServiceSuite(t *testing.T) {
	suite.Run(t, new(CampaignServiceTestSuite))
}
