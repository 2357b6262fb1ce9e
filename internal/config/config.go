package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/vytor/founderlab/internal/logger"
)

// Supported values for enumerated settings.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"

	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderNone      = "none"

	ScoringTemplate = "template"
	ScoringAI       = "ai"
)

type Config struct {
	Addr     string
	DBDriver string
	DBDSN    string
	LogLevel string

	AI AIConfig

	SimulationScoring string
}

// AIConfig selects and configures the hosted language-model provider.
type AIConfig struct {
	Provider string
	Timeout  time.Duration

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	AnthropicAPIKey string
	AnthropicModel  string

	GeminiAPIKey string
	GeminiModel  string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:     envOr("ADDR", ":8080"),
		DBDriver: envOr("DB_DRIVER", DriverSQLite),
		DBDSN:    envOr("DB_DSN", "file:founderlab.db"),
		LogLevel: envOr("LOG_LEVEL", "INFO"),
		AI: AIConfig{
			Provider:        strings.ToLower(envOr("AI_PROVIDER", ProviderOpenAI)),
			Timeout:         envDurationOr("AI_TIMEOUT", 20*time.Second),
			OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:     envOr("OPENAI_MODEL", "gpt-4o-mini"),
			OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
			AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
			AnthropicModel:  envOr("ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
			GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
			GeminiModel:     envOr("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		SimulationScoring: strings.ToLower(envOr("SIMULATION_SCORING", ScoringTemplate)),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("ADDR cannot be empty"))
	}
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, c.DBDriver))
	}
	if strings.TrimSpace(c.DBDSN) == "" {
		errs = append(errs, errors.New("DB_DSN cannot be empty"))
	}
	if !logger.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR, got %q", c.LogLevel))
	}
	if c.AI.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("AI_TIMEOUT must be positive, got %s", c.AI.Timeout))
	}

	switch c.AI.Provider {
	case ProviderOpenAI:
		if c.AI.OpenAIAPIKey == "" {
			errs = append(errs, errors.New("OPENAI_API_KEY is required when AI_PROVIDER=openai"))
		}
	case ProviderAnthropic:
		if c.AI.AnthropicAPIKey == "" {
			errs = append(errs, errors.New("ANTHROPIC_API_KEY is required when AI_PROVIDER=anthropic"))
		}
	case ProviderGemini:
		if c.AI.GeminiAPIKey == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY is required when AI_PROVIDER=gemini"))
		}
	case ProviderNone:
	default:
		errs = append(errs, fmt.Errorf("AI_PROVIDER must be openai, anthropic, gemini or none, got %q", c.AI.Provider))
	}

	switch c.SimulationScoring {
	case ScoringTemplate, ScoringAI:
	default:
		errs = append(errs, fmt.Errorf("SIMULATION_SCORING must be %q or %q, got %q", ScoringTemplate, ScoringAI, c.SimulationScoring))
	}

	return errors.Join(errs...)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

// envDurationOr accepts Go durations ("15s") or a bare number of seconds.
func envDurationOr(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs := envIntOr(key, -1); secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}
