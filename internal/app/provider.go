package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/provider/anthropic"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/provider/gemini"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/config"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

// Generator completes rendered prompts.
type Generator interface {
	Complete(ctx context.Context, p domain.Prompt) (string, error)
}

// NewGenerator builds the configured provider. It returns a nil Generator
// for provider "none", which leaves generation disabled.
func NewGenerator(ctx context.Context, cfg config.GenerationConfig, logger *slog.Logger) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderNone, "":
		return nil, nil
	case config.ProviderAnthropic:
		return anthropic.New(cfg, logger), nil
	case config.ProviderGemini:
		c, err := gemini.New(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
