package character

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
	"github.com/characterforge/characterforge/internal/repositories/campaigns"
	"github.com/characterforge/characterforge/internal/repositories/characters"
	"github.com/characterforge/characterforge/internal/rules"
	"github.com/characterforge/characterforge/internal/uuid"
)

type CharacterServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	campaignRepo campaigns.Repository
	service      Service

	admin  *entities.User
	dm     *entities.User
	player *entities.User
}

func (s *CharacterServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.campaignRepo = campaigns.NewInMemory()
	s.service = NewService(&ServiceConfig{
		CharacterRepository: characters.NewInMemory(),
		CampaignRepository:  s.campaignRepo,
		IDGenerator:         uuid.NewGoogleUUIDGenerator(),
	})

	s.admin = &entities.User{ID: "user-admin", Username: "root", Role: entities.RoleAdmin}
	s.dm = &entities.User{ID: "user-dm", Username: "gm", Role: entities.RoleDM}
	s.player = &entities.User{ID: "user-player", Username: "mika", Role: entities.RolePlayer}
}

func (s *CharacterServiceTestSuite) fighterInput() *CreateInput {
	return &CreateInput{
		OwnerID:    s.player.ID,
		Name:       "Tordek",
		Level:      5,
		Race:       "Hill Dwarf",
		Class:      "Fighter",
		Background: "Soldier",
		Alignment:  "Lawful Good",
		Scores: rules.AbilityScores{
			Strength: 16, Dexterity: 12, Constitution: 14,
			Intelligence: 10, Wisdom: 13, Charisma: 8,
		},
	}
}

func (s *CharacterServiceTestSuite) TestCreateDerivesStats() {
	char, err := s.service.Create(s.ctx, s.fighterInput())
	s.Require().NoError(err)

	s.Equal(44, char.MaxHP)
	s.Equal(44, char.CurrentHP)
	s.Equal(11, char.ArmorClass)
	s.Equal(1, char.Initiative)
	s.Equal(3, char.ProficiencyBonus)
	s.Equal("5d10", char.HitDice)
	s.True(char.SavingThrows["Strength"])
	s.True(char.Skills["Athletics"])
	s.True(char.BuildComplete)
}

func (s *CharacterServiceTestSuite) TestCreateClampsAndDefaults() {
	input := &CreateInput{
		OwnerID: s.player.ID,
		Level:   0,
		Scores:  rules.AbilityScores{Strength: 45, Dexterity: -3},
	}

	char, err := s.service.Create(s.ctx, input)
	s.Require().NoError(err)

	s.Equal("(unnamed)", char.Name)
	s.Equal(1, char.Level)
	s.Equal("Human", char.Race)
	s.Equal("Fighter", char.Class)
	s.Equal("Soldier", char.Background)
	s.Equal("True Neutral", char.Alignment)
	s.Equal(30, char.Abilities.Strength)
	s.Equal(1, char.Abilities.Dexterity)
	s.Equal(10, char.Abilities.Wisdom, "unset scores default to 10")
}

func (s *CharacterServiceTestSuite) TestCreateHonorsOverrides() {
	input := s.fighterInput()
	input.HPOverride = "15"
	input.ACOverride = "nonsense"
	speed := 25
	input.Speed = &speed

	char, err := s.service.Create(s.ctx, input)
	s.Require().NoError(err)

	s.Equal(15, char.MaxHP)
	s.Equal(11, char.ArmorClass, "malformed override is ignored")
	s.Equal(25, char.Speed)
}

func (s *CharacterServiceTestSuite) TestCreatePCRequiresOwner() {
	input := s.fighterInput()
	input.OwnerID = ""

	_, err := s.service.Create(s.ctx, input)
	s.True(apperr.IsInvalidArgument(err))
}

func (s *CharacterServiceTestSuite) TestCreateNPCHasNoOwner() {
	input := s.fighterInput()
	input.OwnerID = s.dm.ID
	input.IsNPC = true
	input.CampaignID = "camp-1"

	char, err := s.service.Create(s.ctx, input)
	s.Require().NoError(err)
	s.Empty(char.OwnerID)
	s.True(char.IsNPC)
}

func (s *CharacterServiceTestSuite) TestListByCampaignSplitsNPCs() {
	pcInput := s.fighterInput()
	pcInput.CampaignID = "camp-1"
	_, err := s.service.Create(s.ctx, pcInput)
	s.Require().NoError(err)

	npcInput := s.fighterInput()
	npcInput.IsNPC = true
	npcInput.CampaignID = "camp-1"
	npcInput.Name = "Guard"
	_, err = s.service.Create(s.ctx, npcInput)
	s.Require().NoError(err)

	pcs, npcs, err := s.service.ListByCampaign(s.ctx, "camp-1")
	s.Require().NoError(err)
	s.Require().Len(pcs, 1)
	s.Require().Len(npcs, 1)
	s.Equal("Tordek", pcs[0].Name)
	s.Equal("Guard", npcs[0].Name)
}

func (s *CharacterServiceTestSuite) TestPermissions() {
	s.Require().NoError(s.campaignRepo.Create(s.ctx, &entities.Campaign{
		ID: "camp-1", Name: "Lost Mine", DMID: s.dm.ID,
	}))

	pcInput := s.fighterInput()
	pcInput.CampaignID = "camp-1"
	pc, err := s.service.Create(s.ctx, pcInput)
	s.Require().NoError(err)

	npcInput := s.fighterInput()
	npcInput.IsNPC = true
	npc, err := s.service.Create(s.ctx, npcInput)
	s.Require().NoError(err)

	otherDM := &entities.User{ID: "user-dm2", Username: "gm2", Role: entities.RoleDM}

	// Admin can do anything.
	s.True(s.service.CanEdit(s.ctx, s.admin, pc))
	s.True(s.service.CanDelete(s.ctx, s.admin, pc))

	// Owner can edit and delete their PC.
	s.True(s.service.CanEdit(s.ctx, s.player, pc))
	s.True(s.service.CanDelete(s.ctx, s.player, pc))

	// The campaign's DM controls PCs in it; an unrelated DM does not.
	s.True(s.service.CanEdit(s.ctx, s.dm, pc))
	s.True(s.service.CanDelete(s.ctx, s.dm, pc))
	s.False(s.service.CanEdit(s.ctx, otherDM, pc))
	s.False(s.service.CanDelete(s.ctx, otherDM, pc))

	// Any DM controls NPCs; players never delete NPCs.
	s.True(s.service.CanEdit(s.ctx, otherDM, npc))
	s.True(s.service.CanDelete(s.ctx, otherDM, npc))
	s.False(s.service.CanDelete(s.ctx, s.player, npc))
}

func TestCharacterServiceSuite(t *testing.T) {
	suite.Run(t, new(CharacterServiceTestSuite))
}
