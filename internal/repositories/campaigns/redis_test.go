package campaigns

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	ctx  context.Context
	mini *miniredis.Miniredis
	repo Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mini = miniredis.RunT(s.T())
	s.repo = NewRedis(redis.NewClient(&redis.Options{Addr: s.mini.Addr()}))
}

func (s *RedisRepoTestSuite) campaign(id, dmID string) *entities.Campaign {
	return &entities.Campaign{
		ID:       id,
		Name:     "Lost Mines",
		DMID:     dmID,
		IsActive: true,
	}
}

func (s *RedisRepoTestSuite) TestCreateAndGet() {
	created := s.campaign("camp-1", "dm-1")
	s.Require().NoError(s.repo.Create(s.ctx, created))
	s.False(created.CreatedAt.IsZero())

	got, err := s.repo.Get(s.ctx, "camp-1")
	s.Require().NoError(err)
	s.Equal("Lost Mines", got.Name)
	s.Equal("dm-1", got.DMID)
	s.True(got.IsActive)
}

func (s *RedisRepoTestSuite) TestCreateDuplicateFails() {
	s.Require().NoError(s.repo.Create(s.ctx, s.campaign("camp-1", "dm-1")))

	err := s.repo.Create(s.ctx, s.campaign("camp-1", "dm-2"))
	s.True(apperr.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestCreateRequiresDM() {
	err := s.repo.Create(s.ctx, &entities.Campaign{ID: "camp-1"})
	s.True(apperr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, "nope")
	s.True(apperr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGetByDM() {
	s.Require().NoError(s.repo.Create(s.ctx, s.campaign("camp-1", "dm-1")))
	s.Require().NoError(s.repo.Create(s.ctx, s.campaign("camp-2", "dm-1")))
	s.Require().NoError(s.repo.Create(s.ctx, s.campaign("camp-3", "dm-2")))

	list, err := s.repo.GetByDM(s.ctx, "dm-1")
	s.Require().NoError(err)
	s.Len(list, 2)

	all, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *RedisRepoTestSuite) TestUpdate() {
	s.Require().NoError(s.repo.Create(s.ctx, s.campaign("camp-1", "dm-1")))

	got, err := s.repo.Get(s.ctx, "camp-1")
	s.Require().NoError(err)
	got.IsActive = false
	s.Require().NoError(s.repo.Update(s.ctx, got))

	updated, err := s.repo.Get(s.ctx, "camp-1")
	s.Require().NoError(err)
	s.False(updated.IsActive)
}

func (s *RedisRepoTestSuite) TestUpdateMissing() {
	err := s.repo.Update(s.ctx, s.campaign("ghost", "dm-1"))
	s.True(apperr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDeleteCleansIndexes() {
	s.Require().NoError(s.repo.Create(s.ctx, s.campaign("camp-1", "dm-1")))
	s.Require().NoError(s.repo.Delete(s.ctx, "camp-1"))

	_, err := s.repo.Get(s.ctx, "camp-1")
	s.True(apperr.IsNotFound(err))

	list, err := s.repo.GetByDM(s.ctx, "dm-1")
	s.Require().NoError(err)
	s.Empty(list)
}

func TestRedisRepoSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}
