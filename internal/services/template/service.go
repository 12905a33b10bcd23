package template

import (
	"context"
	"sort"
	"strings"

	"github.com/characterforge/characterforge/internal/entities"
	apperr "github.com/characterforge/characterforge/internal/errors"
	"github.com/characterforge/characterforge/internal/repositories/campaigns"
	"github.com/characterforge/characterforge/internal/repositories/characters"
	"github.com/characterforge/characterforge/internal/repositories/templates"
	"github.com/characterforge/characterforge/internal/uuid"
)

type service struct {
	templateRepo  templates.Repository
	characterRepo characters.Repository
	campaignRepo  campaigns.Repository
	idGenerator   uuid.Generator
}

// ServiceConfig holds configuration for the template service
type ServiceConfig struct {
	TemplateRepository  templates.Repository
	CharacterRepository characters.Repository
	CampaignRepository  campaigns.Repository
	IDGenerator         uuid.Generator
}

// NewService creates a new template service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("template service config cannot be nil")
	}
	if cfg.TemplateRepository == nil {
		panic("template service requires a template repository")
	}
	if cfg.CharacterRepository == nil {
		panic("template service requires a character repository")
	}
	if cfg.CampaignRepository == nil {
		panic("template service requires a campaign repository")
	}
	if cfg.IDGenerator == nil {
		panic("template service requires an ID generator")
	}
	return &service{
		templateRepo:  cfg.TemplateRepository,
		characterRepo: cfg.CharacterRepository,
		campaignRepo:  cfg.CampaignRepository,
		idGenerator:   cfg.IDGenerator,
	}
}

// canSave mirrors who controls a character: admins always, DMs for NPCs and
// characters in campaigns they run, owners for their own.
func (s *service) canSave(ctx context.Context, actor *entities.User, character *entities.Character) bool {
	switch actor.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleDM:
		if character.IsNPC {
			return true
		}
		if character.CampaignID != "" {
			campaign, err := s.campaignRepo.Get(ctx, character.CampaignID)
			if err == nil && campaign.DMID == actor.ID {
				return true
			}
		}
		return character.OwnerID == actor.ID
	default:
		return character.OwnerID == actor.ID
	}
}

func (s *service) SaveFromCharacter(ctx context.Context, actor *entities.User, characterID, name, description string) (*entities.CharacterTemplate, error) {
	if actor == nil {
		return nil, apperr.InvalidArgument("actor is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.InvalidArgument("template name is required")
	}

	character, err := s.characterRepo.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if !s.canSave(ctx, actor, character) {
		return nil, apperr.PermissionDenied("you can only save your own characters or NPCs as templates")
	}

	existing, err := s.templateRepo.GetByOwner(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	for _, t := range existing {
		if t.Name == name {
			return nil, apperr.AlreadyExistsf("you already have a template named '%s'", name)
		}
	}

	template := character.ToTemplate(name, strings.TrimSpace(description))
	template.ID = s.idGenerator.New()
	// The actor owns the template even for NPCs, which have no owner.
	template.OwnerID = actor.ID

	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}

	return template, nil
}

func (s *service) List(ctx context.Context, ownerID string, npcTemplates bool) ([]*entities.CharacterTemplate, error) {
	all, err := s.templateRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	list := make([]*entities.CharacterTemplate, 0, len(all))
	for _, t := range all {
		if t.IsNPCTemplate == npcTemplates {
			list = append(list, t)
		}
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].TimesUsed > list[j].TimesUsed
	})

	return list, nil
}

func (s *service) Use(ctx context.Context, actor *entities.User, templateID string) (*entities.CharacterTemplate, error) {
	if actor == nil {
		return nil, apperr.InvalidArgument("actor is required")
	}

	template, err := s.templateRepo.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template.OwnerID != actor.ID && actor.Role != entities.RoleAdmin {
		return nil, apperr.PermissionDenied("not your template")
	}

	template.TimesUsed++
	if err := s.templateRepo.Update(ctx, template); err != nil {
		return nil, err
	}

	return template, nil
}

func (s *service) Delete(ctx context.Context, actor *entities.User, templateID string) error {
	if actor == nil {
		return apperr.InvalidArgument("actor is required")
	}

	template, err := s.templateRepo.Get(ctx, templateID)
	if err != nil {
		return err
	}
	if template.OwnerID != actor.ID && actor.Role != entities.RoleAdmin {
		return apperr.PermissionDenied("you can only delete your own templates")
	}

	return s.templateRepo.Delete(ctx, templateID)
}
