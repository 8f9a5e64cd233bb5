package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"

	"product-copy/internal/config"
	"product-copy/internal/llm"
	"product-copy/internal/logger"
	"product-copy/internal/product"
)

// Deps bundles the runtime dependencies of the gateway.
type Deps struct {
	Config    config.Config
	Log       *slog.Logger
	Generator *product.Generator
	Suggester *product.Suggester
}

// Build loads env, config, and shared components.
func Build() (Deps, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Deps{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	return BuildWith(cfg, log)
}

// BuildWith assembles components from an already loaded config.
func BuildWith(cfg config.Config, log *slog.Logger) (Deps, error) {
	if cfg.GenerationMode != config.ModeAuto && cfg.GenerationMode != config.ModeLive {
		return Deps{}, fmt.Errorf("invalid GENERATION_MODE: %s (valid options: auto, live)", cfg.GenerationMode)
	}
	client := buildLLM(cfg, log)
	return Deps{
		Config:    cfg,
		Log:       log,
		Generator: buildGenerator(cfg, client, log),
		Suggester: product.NewSuggester(client, log),
	}, nil
}

// buildLLM never fails: configuration problems become an llm.Unavailable so
// each call reports them in its response.
func buildLLM(cfg config.Config, log *slog.Logger) llm.Client {
	if cfg.OpenAIKey == "" {
		log.Warn("OPENAI_API_KEY not set")
		return llm.Unavailable{Err: product.ErrMissingCredential}
	}
	switch cfg.LLMProvider {
	case "openai":
		client, err := llm.NewOpenAIClient(cfg.OpenAIKey, llm.Options{
			Model:       cfg.LLMModel,
			BaseURL:     cfg.OpenAIBaseURL,
			Temperature: cfg.LLMTemperature,
		})
		if err != nil {
			log.Error("failed to initialize OpenAI client", "err", err)
			return llm.Unavailable{Err: fmt.Errorf("%w: %v", product.ErrIntegrationUnavailable, err)}
		}
		log.Info("using OpenAI LLM client", "model", cfg.LLMModel)
		return client
	default:
		log.Warn("no usable LLM provider", "provider", cfg.LLMProvider)
		return llm.Unavailable{Err: fmt.Errorf("%w: provider %q is not supported (valid option: openai)", product.ErrIntegrationUnavailable, cfg.LLMProvider)}
	}
}

func buildGenerator(cfg config.Config, client llm.Client, log *slog.Logger) *product.Generator {
	if cfg.OpenAIKey == "" && cfg.MockAllowed() {
		log.Info("using mock content generator")
		return product.NewMockGenerator(log)
	}
	return product.NewRemoteGenerator(client, log)
}
