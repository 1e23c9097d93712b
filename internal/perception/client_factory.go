package perception

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"drawscore/internal/config"
)

// NewVisionClient builds the provider client selected by the configuration.
// An unset provider falls back to OpenAI.
func NewVisionClient(ctx context.Context, cfg *config.Config, logger *zap.Logger) (VisionClient, error) {
	switch Provider(cfg.LLM.Provider) {
	case ProviderOpenAI, "":
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("no OpenAI API key configured (set OPENAI_API_KEY)")
		}
		return NewOpenAIClientWithConfig(OpenAIConfig{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			Timeout: cfg.GetLLMTimeout(),
		}, logger), nil

	case ProviderGemini:
		return NewGeminiClient(ctx, cfg.LLM.APIKey, cfg.LLM.Model, logger)

	default:
		return nil, fmt.Errorf("unknown provider %q (want openai or gemini)", cfg.LLM.Provider)
	}
}
