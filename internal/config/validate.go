package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0")
	}

	if _, err := time.LoadLocation(c.Dashboard.Timezone); err != nil {
		return fmt.Errorf("dashboard.timezone: %w", err)
	}

	if !c.RateLimit.Disabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}

	if c.Review.NotificationLimit <= 0 {
		return fmt.Errorf("review.notification_limit must be > 0 (got %d)", c.Review.NotificationLimit)
	}
	if c.Workspace.MaxSessionsPerUser <= 0 {
		return fmt.Errorf("workspace.max_sessions_per_user must be > 0 (got %d)", c.Workspace.MaxSessionsPerUser)
	}

	if (c.Notion.Token == "") != (c.Notion.DatabaseID == "") {
		return fmt.Errorf("notion: token and database_id must be set together")
	}

	if !c.Metrics.Disabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (g *GenerationConfig) validate() error {
	switch g.Provider {
	case ProviderNone:
	case ProviderAnthropic:
		if g.AnthropicAPIKey == "" {
			return fmt.Errorf("anthropic_api_key is required for provider %q", g.Provider)
		}
	case ProviderGemini:
		if g.GeminiAPIKey == "" {
			return fmt.Errorf("gemini_api_key is required for provider %q", g.Provider)
		}
	default:
		return fmt.Errorf("unknown provider %q", g.Provider)
	}
	if g.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", g.MaxTokens)
	}
	if g.BreakerFailures == 0 {
		return fmt.Errorf("breaker_failures must be > 0")
	}
	return nil
}
