package services

import (
	"github.com/characterforge/characterforge/internal/clients/ollama"
	"github.com/characterforge/characterforge/internal/repositories/campaigns"
	"github.com/characterforge/characterforge/internal/repositories/characters"
	"github.com/characterforge/characterforge/internal/repositories/memberships"
	"github.com/characterforge/characterforge/internal/repositories/templates"
	"github.com/characterforge/characterforge/internal/repositories/users"
	aiService "github.com/characterforge/characterforge/internal/services/ai"
	campaignService "github.com/characterforge/characterforge/internal/services/campaign"
	characterService "github.com/characterforge/characterforge/internal/services/character"
	templateService "github.com/characterforge/characterforge/internal/services/template"
	userService "github.com/characterforge/characterforge/internal/services/user"
	"github.com/characterforge/characterforge/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	AIService        aiService.Service
	UserService      userService.Service
	CampaignService  campaignService.Service
	CharacterService characterService.Service
	TemplateService  templateService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	OllamaClient ollama.Client

	UserRepository       users.Repository
	CampaignRepository   campaigns.Repository
	MembershipRepository memberships.Repository
	CharacterRepository  characters.Repository
	TemplateRepository   templates.Repository

	IDGenerator uuid.Generator
}

// NewProvider creates a new service provider with all services initialized.
// Repositories left nil fall back to in-memory implementations.
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil {
		panic("provider config cannot be nil")
	}

	idGenerator := cfg.IDGenerator
	if idGenerator == nil {
		idGenerator = uuid.NewGoogleUUIDGenerator()
	}

	userRepo := cfg.UserRepository
	if userRepo == nil {
		userRepo = users.NewInMemory()
	}
	campaignRepo := cfg.CampaignRepository
	if campaignRepo == nil {
		campaignRepo = campaigns.NewInMemory()
	}
	membershipRepo := cfg.MembershipRepository
	if membershipRepo == nil {
		membershipRepo = memberships.NewInMemory()
	}
	characterRepo := cfg.CharacterRepository
	if characterRepo == nil {
		characterRepo = characters.NewInMemory()
	}
	templateRepo := cfg.TemplateRepository
	if templateRepo == nil {
		templateRepo = templates.NewInMemory()
	}

	return &Provider{
		AIService: aiService.NewService(&aiService.Config{
			Client: cfg.OllamaClient,
		}),
		UserService: userService.NewService(&userService.ServiceConfig{
			Repository:  userRepo,
			IDGenerator: idGenerator,
		}),
		CampaignService: campaignService.NewService(&campaignService.ServiceConfig{
			CampaignRepository:   campaignRepo,
			MembershipRepository: membershipRepo,
			UserRepository:       userRepo,
			IDGenerator:          idGenerator,
		}),
		CharacterService: characterService.NewService(&characterService.ServiceConfig{
			CharacterRepository: characterRepo,
			CampaignRepository:  campaignRepo,
			IDGenerator:         idGenerator,
		}),
		TemplateService: templateService.NewService(&templateService.ServiceConfig{
			TemplateRepository:  templateRepo,
			CharacterRepository: characterRepo,
			CampaignRepository:  campaignRepo,
			IDGenerator:         idGenerator,
		}),
	}
}
