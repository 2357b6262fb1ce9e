package main

import (
	"context"
	"fmt"

	"github.com/vytor/founderlab/internal/config"
	"github.com/vytor/founderlab/internal/db"
	"github.com/vytor/founderlab/internal/llm"
	"github.com/vytor/founderlab/internal/logger"
)

// loadConfig reads and validates configuration, then installs the default logger.
func loadConfig() (config.Config, *logger.Logger, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return cfg, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)
	return cfg, log, nil
}

func openDatabase(ctx context.Context, cfg config.Config) (*db.DB, error) {
	database, err := db.Open(ctx, cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return database, nil
}

func llmConfig(ai config.AIConfig) llm.Config {
	return llm.Config{
		Provider: ai.Provider,
		Timeout:  ai.Timeout,
		OpenAI: llm.OpenAIConfig{
			APIKey:  ai.OpenAIAPIKey,
			Model:   ai.OpenAIModel,
			BaseURL: ai.OpenAIBaseURL,
		},
		Anthropic: llm.AnthropicConfig{
			APIKey: ai.AnthropicAPIKey,
			Model:  ai.AnthropicModel,
		},
		Gemini: llm.GeminiConfig{
			APIKey: ai.GeminiAPIKey,
			Model:  ai.GeminiModel,
		},
	}
}
