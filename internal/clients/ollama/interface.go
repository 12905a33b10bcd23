//go:generate mockgen -destination=mock/mock_client.go -package=mockollama -source=interface.go

package ollama

import "context"

// Message is a single turn in a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client talks to an Ollama-compatible generation service. Calls never
// return transport errors: Health reports a boolean, and Chat/Generate
// return a "[AI unavailable: <reason>]" sentinel string on any failure.
type Client interface {
	// Health reports whether the service answers within a short deadline
	Health(ctx context.Context) bool

	// Chat sends a conversation and returns the assistant's reply
	Chat(ctx context.Context, messages []Message) string

	// Generate sends a single prompt and returns the completion
	Generate(ctx context.Context, prompt string) string
}
