package characters

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
	"github.com/characterforge/characterforge/internal/rules"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx        context.Context
	miniRedis  *miniredis.Miniredis
	repository Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.miniRedis = miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: s.miniRedis.Addr()})
	s.repository = NewRedis(client)
}

func (s *RedisRepositoryTestSuite) character(id, ownerID, campaignID string) *entities.Character {
	return &entities.Character{
		ID:         id,
		OwnerID:    ownerID,
		CampaignID: campaignID,
		Name:       "Tordek",
		Level:      1,
		Class:      "Fighter",
		Race:       "Hill Dwarf",
		Abilities: rules.AbilityScores{
			Strength: 16, Dexterity: 12, Constitution: 14,
			Intelligence: 10, Wisdom: 13, Charisma: 8,
		},
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	c := s.character("char-1", "user-1", "")

	err := s.repository.Create(s.ctx, c)
	s.Require().NoError(err)
	s.False(c.CreatedAt.IsZero())

	got, err := s.repository.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal("Tordek", got.Name)
	s.Equal(16, got.Abilities.Strength)
}

func (s *RedisRepositoryTestSuite) TestCreateRequiresName() {
	c := s.character("char-1", "user-1", "")
	c.Name = ""

	err := s.repository.Create(s.ctx, c)
	s.True(apperr.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	s.Require().NoError(s.repository.Create(s.ctx, s.character("char-1", "user-1", "")))

	err := s.repository.Create(s.ctx, s.character("char-1", "user-2", ""))
	s.True(apperr.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGetByOwnerAndCampaign() {
	s.Require().NoError(s.repository.Create(s.ctx, s.character("char-1", "user-1", "camp-1")))
	s.Require().NoError(s.repository.Create(s.ctx, s.character("char-2", "user-1", "")))
	// An NPC has no owner but belongs to a campaign.
	npc := s.character("npc-1", "", "camp-1")
	npc.IsNPC = true
	s.Require().NoError(s.repository.Create(s.ctx, npc))

	byOwner, err := s.repository.GetByOwner(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Len(byOwner, 2)

	byCampaign, err := s.repository.GetByCampaign(s.ctx, "camp-1")
	s.Require().NoError(err)
	s.Len(byCampaign, 2)
}

func (s *RedisRepositoryTestSuite) TestListFansOut() {
	for i := 0; i < 20; i++ {
		c := s.character(fmt.Sprintf("char-%d", i), "user-1", "")
		s.Require().NoError(s.repository.Create(s.ctx, c))
	}

	all, err := s.repository.List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 20)
}

func (s *RedisRepositoryTestSuite) TestUpdateMovesCampaignIndex() {
	c := s.character("char-1", "user-1", "camp-1")
	s.Require().NoError(s.repository.Create(s.ctx, c))

	c.CampaignID = "camp-2"
	s.Require().NoError(s.repository.Update(s.ctx, c))

	oldCampaign, err := s.repository.GetByCampaign(s.ctx, "camp-1")
	s.Require().NoError(err)
	s.Empty(oldCampaign)

	newCampaign, err := s.repository.GetByCampaign(s.ctx, "camp-2")
	s.Require().NoError(err)
	s.Len(newCampaign, 1)
}

func (s *RedisRepositoryTestSuite) TestUpdatePreservesCreatedAt() {
	c := s.character("char-1", "user-1", "")
	s.Require().NoError(s.repository.Create(s.ctx, c))
	created := c.CreatedAt

	c.Level = 2
	s.Require().NoError(s.repository.Update(s.ctx, c))

	got, err := s.repository.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal(2, got.Level)
	s.True(got.CreatedAt.Equal(created))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	s.Require().NoError(s.repository.Create(s.ctx, s.character("char-1", "user-1", "camp-1")))
	s.Require().NoError(s.repository.Delete(s.ctx, "char-1"))

	_, err := s.repository.Get(s.ctx, "char-1")
	s.True(apperr.IsNotFound(err))

	byOwner, err := s.repository.GetByOwner(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Empty(byOwner)
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
