package llm

import "context"

// Provider sends one chat request to a hosted language model.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	System   string
	Messages []Message

	// Model overrides the provider's configured model when set.
	Model string

	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the text of the first choice.
type Response struct {
	Content string
	Usage   Usage
	Model   string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// resolveModel prefers the per-request model over the configured one.
func resolveModel(requested, configured string) string {
	if requested != "" {
		return requested
	}
	return configured
}
