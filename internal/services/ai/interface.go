package ai

import "context"

// BuildContext is the in-progress character build a wizard step describes to
// the model. Zero-valued fields are omitted from the prompt.
type BuildContext struct {
	Name         string
	Race         string
	Class        string
	Background   string
	Level        int
	Strength     int
	Dexterity    int
	Constitution int
	Intelligence int
	Wisdom       int
	Charisma     int
}

// Service is the AI assistant behind the character wizard and NPC generator.
type Service interface {
	// Health reports whether the generation service is reachable
	Health(ctx context.Context) bool

	// StepChat answers a player's question during a wizard step. The reply
	// is model text, or an "[AI unavailable: ...]" sentinel when the
	// service fails.
	StepChat(ctx context.Context, step string, build BuildContext, userMessage string) string

	// GenerateNPC produces a stat-block suggestion from a free-text
	// description. A *ParseError is returned when the model's reply
	// contains no parseable object.
	GenerateNPC(ctx context.Context, description string) (*StatBlockSuggestion, error)
}
