package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/characterforge/characterforge/internal/clients/ollama"
)

type service struct {
	client ollama.Client
}

type Config struct {
	Client ollama.Client
}

// NewService creates the AI assistant service
func NewService(cfg *Config) Service {
	if cfg == nil {
		panic("ai service config cannot be nil")
	}
	if cfg.Client == nil {
		panic("ai service requires an ollama client")
	}
	return &service{client: cfg.Client}
}

func (s *service) Health(ctx context.Context) bool {
	return s.client.Health(ctx)
}

func (s *service) StepChat(ctx context.Context, step string, build BuildContext, userMessage string) string {
	return s.client.Chat(ctx, stepPrompt(step, build, userMessage))
}

func (s *service) GenerateNPC(ctx context.Context, description string) (*StatBlockSuggestion, error) {
	prompt := fmt.Sprintf(npcPrompt, srdSummary, description)
	raw := s.client.Generate(ctx, prompt)
	if strings.HasPrefix(raw, "[AI unavailable:") {
		return nil, newParseError(raw)
	}
	return ExtractStatBlock(raw)
}
