package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Options are the per-call limits. Temperature is clamped to [0, 1].
type Options struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// Gateway is the single entry point for completion calls. Each call runs
// under the configured timeout and is never retried.
type Gateway struct {
	provider Provider
	timeout  time.Duration
}

// NewGateway creates a Gateway. A non-positive timeout disables the deadline.
func NewGateway(p Provider, timeout time.Duration) *Gateway {
	return &Gateway{provider: p, timeout: timeout}
}

// Complete sends a single-turn request and returns the reply text.
func (g *Gateway) Complete(ctx context.Context, system, user string, opts Options) (string, error) {
	return g.Chat(ctx, system, []Message{{Role: RoleUser, Content: user}}, opts)
}

// Chat sends a multi-turn request; history must end with the user's turn.
func (g *Gateway) Chat(ctx context.Context, system string, history []Message, opts Options) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.provider.Generate(ctx, Request{
		System:      system,
		Messages:    history,
		Model:       opts.Model,
		MaxTokens:   opts.MaxTokens,
		Temperature: clampTemperature(opts.Temperature),
	})
	if err != nil {
		if IsGatewayError(err) {
			return "", err
		}
		return "", &UpstreamError{Provider: g.provider.ModelID(), Err: err}
	}

	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return "", &EmptyResponseError{Provider: g.provider.ModelID()}
	}
	return text, nil
}

// CompleteJSON sends a single-turn request and decodes the reply into out.
// Markdown code fences around the JSON are tolerated. Text that does not
// parse or does not satisfy schema yields a MalformedResponseError.
func (g *Gateway) CompleteJSON(ctx context.Context, system, user string, schema *Schema, opts Options, out any) error {
	text, err := g.Complete(ctx, system, user, opts)
	if err != nil {
		return err
	}

	raw := StripCodeFence(text)
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return &MalformedResponseError{Content: text, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := validateJSON(schema, parsed); err != nil {
		return &MalformedResponseError{Content: text, Err: err}
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return &MalformedResponseError{Content: text, Err: err}
	}
	return nil
}

// StripCodeFence removes a surrounding ``` or ```json fence, if any.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func clampTemperature(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
