package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
)

// Generation modes decide what happens when no provider key is configured.
const (
	ModeAuto = "auto" // fall back to mock generation
	ModeLive = "live" // report a missing credential
)

// Config holds runtime configuration.
type Config struct {
	// Server
	Port            int           `env:"PORT" envDefault:"8000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// LLM
	LLMProvider    string  `env:"LLM_PROVIDER" envDefault:"openai"` // "openai" or "none"
	OpenAIKey      string  `env:"OPENAI_API_KEY"`
	OpenAIBaseURL  string  `env:"OPENAI_BASE_URL"`
	LLMModel       string  `env:"LLM_MODEL" envDefault:"gpt-3.5-turbo"`
	LLMTemperature float64 `env:"LLM_TEMPERATURE" envDefault:"0.7"`
	GenerationMode string  `env:"GENERATION_MODE" envDefault:"auto"` // "auto" or "live"
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}

// MockAllowed reports whether a missing key falls back to mock generation.
func (c Config) MockAllowed() bool {
	return c.GenerationMode != ModeLive
}
