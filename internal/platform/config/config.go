// Package config builds application configuration from environment variables
// so main stays lean. Every knob has a development default; production
// deployments override via BIZFORM_* variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the top-level application configuration.
type Config struct {
	Server    Server
	Redis     RedisConfig
	Postgres  PostgresConfig
	Assistant AssistantConfig
	Wizard    WizardConfig
	RateLimit RateLimitConfig
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr string
}

// RedisConfig configures the optional Redis connection used by the assistant
// response cache. An empty URL means Redis is not configured and the service
// falls back to the in-memory cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig configures the optional knowledge-base database. An empty DSN
// means content is served from the built-in static fallback.
type PostgresConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

// AssistantConfig configures the chat completion provider proxy.
type AssistantConfig struct {
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// WizardConfig controls wizard run retention.
type WizardConfig struct {
	RunTTL time.Duration
}

// RateLimitConfig controls the per-IP limiter applied to the assistant route.
type RateLimitConfig struct {
	Limit    int
	Window   time.Duration
	Disabled bool
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	return Config{
		Server: Server{
			Addr: envString("BIZFORM_ADDR", ":8080"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("BIZFORM_REDIS_URL"),
			PoolSize:     envInt("BIZFORM_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("BIZFORM_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("BIZFORM_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("BIZFORM_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("BIZFORM_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Postgres: PostgresConfig{
			DSN:          os.Getenv("BIZFORM_POSTGRES_DSN"),
			MaxOpenConns: envInt("BIZFORM_POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns: envInt("BIZFORM_POSTGRES_MAX_IDLE_CONNS", 5),
		},
		Assistant: AssistantConfig{
			APIKey:   os.Getenv("BIZFORM_ASSISTANT_API_KEY"),
			Model:    envString("BIZFORM_ASSISTANT_MODEL", "gpt-4o-mini"),
			BaseURL:  envString("BIZFORM_ASSISTANT_BASE_URL", "https://api.openai.com"),
			Timeout:  envDuration("BIZFORM_ASSISTANT_TIMEOUT", 30*time.Second),
			CacheTTL: envDuration("BIZFORM_ASSISTANT_CACHE_TTL", 15*time.Minute),
		},
		Wizard: WizardConfig{
			RunTTL: envDuration("BIZFORM_WIZARD_RUN_TTL", 30*time.Minute),
		},
		RateLimit: RateLimitConfig{
			Limit:    envInt("BIZFORM_RATE_LIMIT", 20),
			Window:   envDuration("BIZFORM_RATE_LIMIT_WINDOW", time.Minute),
			Disabled: os.Getenv("BIZFORM_RATE_LIMIT_DISABLED") == "true",
		},
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
