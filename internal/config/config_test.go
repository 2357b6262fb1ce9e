package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/founderlab/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:     ":8080",
		DBDriver: config.DriverSQLite,
		DBDSN:    "file:test.db",
		LogLevel: "INFO",
		AI: config.AIConfig{
			Provider:     config.ProviderOpenAI,
			Timeout:      20 * time.Second,
			OpenAIAPIKey: "sk-test",
			OpenAIModel:  "gpt-4o-mini",
		},
		SimulationScoring: config.ScoringTemplate,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDSN(t *testing.T) {
	cfg := validConfig()
	cfg.DBDSN = " "

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DSN cannot be empty")
}

func TestValidate_Driver(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		wantErr bool
	}{
		{name: "sqlite", driver: config.DriverSQLite},
		{name: "postgres", driver: config.DriverPostgres},
		{name: "unknown", driver: "mysql", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.DBDriver = tt.driver

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "DB_DRIVER")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_LogLevel(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: "DEBUG"},
		{level: "INFO"},
		{level: "WARN"},
		{level: "ERROR"},
		{level: "debug"},
		{level: "", wantErr: true},
		{level: "INVALID", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.level

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_ProviderKeys(t *testing.T) {
	tests := []struct {
		name        string
		provider    string
		expectedErr string
	}{
		{name: "openai without key", provider: config.ProviderOpenAI, expectedErr: "OPENAI_API_KEY"},
		{name: "anthropic without key", provider: config.ProviderAnthropic, expectedErr: "ANTHROPIC_API_KEY"},
		{name: "gemini without key", provider: config.ProviderGemini, expectedErr: "GEMINI_API_KEY"},
		{name: "unknown provider", provider: "cohere", expectedErr: "AI_PROVIDER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.AI.Provider = tt.provider
			cfg.AI.OpenAIAPIKey = ""

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestValidate_NoneProviderNeedsNoKey(t *testing.T) {
	cfg := validConfig()
	cfg.AI.Provider = config.ProviderNone
	cfg.AI.OpenAIAPIKey = ""

	assert.NoError(t, cfg.Validate())
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{
		Addr:              "",
		DBDriver:          "oracle",
		DBDSN:             "",
		LogLevel:          "LOUD",
		AI:                config.AIConfig{Provider: "skynet"},
		SimulationScoring: "dice",
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_DRIVER")
	assert.Contains(t, errStr, "DB_DSN cannot be empty")
	assert.Contains(t, errStr, "LOG_LEVEL")
	assert.Contains(t, errStr, "AI_TIMEOUT")
	assert.Contains(t, errStr, "AI_PROVIDER")
	assert.Contains(t, errStr, "SIMULATION_SCORING")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_DSN", "file:custom.db")
	t.Setenv("AI_PROVIDER", "Anthropic")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("SIMULATION_SCORING", "AI")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "file:custom.db", cfg.DBDSN)
	assert.Equal(t, config.ProviderAnthropic, cfg.AI.Provider)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
	assert.Equal(t, config.ScoringAI, cfg.SimulationScoring)
}

func TestLoad_TimeoutFallbacks(t *testing.T) {
	t.Setenv("AI_TIMEOUT", "7")
	assert.Equal(t, 7*time.Second, config.Load().AI.Timeout)

	t.Setenv("AI_TIMEOUT", "soon")
	assert.Equal(t, 20*time.Second, config.Load().AI.Timeout)
}
