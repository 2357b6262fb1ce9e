package llm

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/founderlab/internal/logger"
)

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	p, err := NewProvider(ctx, Config{Provider: "none"})
	require.NoError(t, err)
	assert.Equal(t, "none", p.ModelID())

	p, err = NewProvider(ctx, Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini"}})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", p.ModelID())

	p, err = NewProvider(ctx, Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k", Model: "claude-3-5-haiku-latest"}})
	require.NoError(t, err)
	assert.Equal(t, "claude-3-5-haiku-latest", p.ModelID())

	_, err = NewProvider(ctx, Config{Provider: "openai"})
	assert.ErrorContains(t, err, "initializing openai provider")

	_, err = NewProvider(ctx, Config{Provider: "cohere"})
	assert.ErrorContains(t, err, "unknown AI provider")
}

func TestWithLogging_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithColors(false), logger.WithCaller(false), logger.WithLevel(logger.DEBUG))
	ctx := WithPurpose(logger.NewContext(context.Background(), log), "mentor_chat")

	p := WithLogging(NewMockProvider(MockResponse{Content: "hi", Usage: Usage{InputTokens: 3, OutputTokens: 1}}))

	_, err := p.Generate(ctx, Request{})
	require.NoError(t, err)
	_, err = p.Generate(ctx, Request{})
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "completion ok")
	assert.Contains(t, out, "in=3 out=1 tokens")
	assert.Contains(t, out, "completion failed")
	assert.Contains(t, out, "purpose=mentor_chat")
}
