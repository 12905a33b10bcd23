package character

import (
	"context"
	"strings"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
	"github.com/characterforge/characterforge/internal/repositories/campaigns"
	"github.com/characterforge/characterforge/internal/repositories/characters"
	"github.com/characterforge/characterforge/internal/rulebook"
	"github.com/characterforge/characterforge/internal/rules"
	"github.com/characterforge/characterforge/internal/uuid"
)

const (
	defaultName       = "(unnamed)"
	defaultRace       = "Human"
	defaultClass      = "Fighter"
	defaultBackground = "Soldier"
	defaultAlignment  = "True Neutral"
)

type service struct {
	characterRepo characters.Repository
	campaignRepo  campaigns.Repository
	idGenerator   uuid.Generator
}

// ServiceConfig holds configuration for the character service
type ServiceConfig struct {
	CharacterRepository characters.Repository
	CampaignRepository  campaigns.Repository
	IDGenerator         uuid.Generator
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("character service config cannot be nil")
	}
	if cfg.CharacterRepository == nil {
		panic("character service requires a character repository")
	}
	if cfg.CampaignRepository == nil {
		panic("character service requires a campaign repository")
	}
	if cfg.IDGenerator == nil {
		panic("character service requires an ID generator")
	}
	return &service{
		characterRepo: cfg.CharacterRepository,
		campaignRepo:  cfg.CampaignRepository,
		idGenerator:   cfg.IDGenerator,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampScores(scores rules.AbilityScores) rules.AbilityScores {
	clampScore := func(v int) int {
		if v == 0 {
			v = 10
		}
		return clamp(v, 1, 30)
	}
	return rules.AbilityScores{
		Strength:     clampScore(scores.Strength),
		Dexterity:    clampScore(scores.Dexterity),
		Constitution: clampScore(scores.Constitution),
		Intelligence: clampScore(scores.Intelligence),
		Wisdom:       clampScore(scores.Wisdom),
		Charisma:     clampScore(scores.Charisma),
	}
}

func orDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

func (s *service) Create(ctx context.Context, input *CreateInput) (*entities.Character, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if !input.IsNPC && input.OwnerID == "" {
		return nil, apperr.InvalidArgument("a player character needs an owner")
	}

	scores := clampScores(input.Scores)
	level := clamp(input.Level, 1, 30)

	character := &entities.Character{
		ID:         s.idGenerator.New(),
		CampaignID: input.CampaignID,
		IsNPC:      input.IsNPC,
		Name:       orDefault(input.Name, defaultName),
		Level:      level,
		Class:      orDefault(input.Class, defaultClass),
		Race:       orDefault(input.Race, defaultRace),
		Background: orDefault(input.Background, defaultBackground),
		Alignment:  orDefault(input.Alignment, defaultAlignment),
		Abilities:  scores,
		Traits:     input.Traits,
		Notes:      input.Notes,
	}
	if !input.IsNPC {
		character.OwnerID = input.OwnerID
	}

	result := rules.Build(rules.BuildRequest{
		Race:          character.Race,
		Class:         character.Class,
		Background:    character.Background,
		Level:         level,
		Scores:        scores,
		HPOverride:    input.HPOverride,
		ACOverride:    input.ACOverride,
		SpeedOverride: input.Speed,
	})
	character.ApplyBuild(result)
	character.Initiative = scores.Modifier(rulebook.AbilityDexterity)

	if err := s.characterRepo.Create(ctx, character); err != nil {
		return nil, err
	}

	return character, nil
}

func (s *service) Get(ctx context.Context, id string) (*entities.Character, error) {
	return s.characterRepo.Get(ctx, id)
}

func (s *service) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Character, error) {
	return s.characterRepo.GetByOwner(ctx, ownerID)
}

func (s *service) ListByCampaign(ctx context.Context, campaignID string) (pcs, npcs []*entities.Character, err error) {
	list, err := s.characterRepo.GetByCampaign(ctx, campaignID)
	if err != nil {
		return nil, nil, err
	}

	for _, c := range list {
		if c.IsNPC {
			npcs = append(npcs, c)
		} else {
			pcs = append(pcs, c)
		}
	}
	return pcs, npcs, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.characterRepo.Delete(ctx, id)
}

// dmRunsCampaign reports whether the actor is the DM of the character's
// campaign.
func (s *service) dmRunsCampaign(ctx context.Context, actor *entities.User, character *entities.Character) bool {
	if character.CampaignID == "" {
		return false
	}
	campaign, err := s.campaignRepo.Get(ctx, character.CampaignID)
	if err != nil {
		return false
	}
	return campaign.DMID == actor.ID
}

func (s *service) CanEdit(ctx context.Context, actor *entities.User, character *entities.Character) bool {
	if actor == nil || character == nil {
		return false
	}
	switch actor.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleDM:
		if s.dmRunsCampaign(ctx, actor, character) {
			return true
		}
		return character.IsNPC
	default:
		return character.OwnerID == actor.ID
	}
}

func (s *service) CanDelete(ctx context.Context, actor *entities.User, character *entities.Character) bool {
	if actor == nil || character == nil {
		return false
	}
	switch actor.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleDM:
		if character.IsNPC {
			return true
		}
		return s.dmRunsCampaign(ctx, actor, character)
	default:
		return character.OwnerID == actor.ID && !character.IsNPC
	}
}
