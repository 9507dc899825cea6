package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Dashboard  DashboardConfig  `yaml:"dashboard"`
	Generation GenerationConfig `yaml:"generation"`
	Review     ReviewConfig     `yaml:"review"`
	Workspace  WorkspaceConfig  `yaml:"workspace"`
	Notion     NotionConfig     `yaml:"notion"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id,X-Narrative-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SkipMigrations  bool          `yaml:"skip_migrations"    env:"DATABASE_SKIP_MIGRATIONS"`
}

// AuthConfig holds bearer token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"jobcenter"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	Disabled          bool          `yaml:"disabled"            env:"RATE_LIMIT_DISABLED"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"300"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

// DashboardConfig holds settings for derived views.
type DashboardConfig struct {
	// Timezone defines the calendar used for weekly goal windows.
	Timezone string `yaml:"timezone" env:"DASHBOARD_TIMEZONE" env-default:"UTC"`
}

// Generation providers.
const (
	ProviderNone      = "none"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// GenerationConfig holds generative content provider settings.
type GenerationConfig struct {
	Provider        string        `yaml:"provider"          env:"GENERATION_PROVIDER"          env-default:"none"`
	AnthropicAPIKey string        `yaml:"anthropic_api_key" env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string        `yaml:"anthropic_model"   env:"ANTHROPIC_MODEL"              env-default:"claude-sonnet-4-5"`
	AnthropicURL    string        `yaml:"anthropic_url"     env:"ANTHROPIC_BASE_URL"`
	GeminiAPIKey    string        `yaml:"gemini_api_key"    env:"GEMINI_API_KEY"`
	GeminiModel     string        `yaml:"gemini_model"      env:"GEMINI_MODEL"                 env-default:"gemini-2.5-flash"`
	MaxTokens       int64         `yaml:"max_tokens"        env:"GENERATION_MAX_TOKENS"        env-default:"2048"`
	Timeout         time.Duration `yaml:"timeout"           env:"GENERATION_TIMEOUT"           env-default:"60s"`
	BreakerFailures uint32        `yaml:"breaker_failures"  env:"GENERATION_BREAKER_FAILURES"  env-default:"5"`
	BreakerInterval time.Duration `yaml:"breaker_interval"  env:"GENERATION_BREAKER_INTERVAL"  env-default:"60s"`
	BreakerTimeout  time.Duration `yaml:"breaker_timeout"   env:"GENERATION_BREAKER_TIMEOUT"   env-default:"30s"`
}

// ReviewConfig holds settings for the job review queue.
type ReviewConfig struct {
	NotificationLimit int `yaml:"notification_limit" env:"REVIEW_NOTIFICATION_LIMIT" env-default:"50"`
}

// WorkspaceConfig holds limits for server-side edit sessions.
type WorkspaceConfig struct {
	MaxSessionsPerUser int           `yaml:"max_sessions_per_user" env:"WORKSPACE_MAX_SESSIONS_PER_USER" env-default:"50"`
	IdleTTL            time.Duration `yaml:"idle_ttl"              env:"WORKSPACE_IDLE_TTL"              env-default:"2h"`
}

// NotionConfig holds the optional export target.
type NotionConfig struct {
	Token      string `yaml:"token"       env:"NOTION_TOKEN"`
	DatabaseID string `yaml:"database_id" env:"NOTION_DATABASE_ID"`
}

// Enabled reports whether an export target is configured.
func (c NotionConfig) Enabled() bool {
	return c.Token != "" && c.DatabaseID != ""
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Disabled bool   `yaml:"disabled" env:"METRICS_DISABLED"`
	Path     string `yaml:"path"     env:"METRICS_PATH"     env-default:"/metrics"`
}

// SplitList splits a comma-separated setting, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
