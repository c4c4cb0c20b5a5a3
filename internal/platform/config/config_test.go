package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Server.Addr)
	}
	if cfg.Wizard.RunTTL != 30*time.Minute {
		t.Fatalf("expected default run TTL 30m, got %s", cfg.Wizard.RunTTL)
	}
	if cfg.RateLimit.Limit != 20 {
		t.Fatalf("expected default rate limit 20, got %d", cfg.RateLimit.Limit)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("BIZFORM_ADDR", ":9999")
	t.Setenv("BIZFORM_WIZARD_RUN_TTL", "5m")
	t.Setenv("BIZFORM_RATE_LIMIT", "3")
	t.Setenv("BIZFORM_RATE_LIMIT_DISABLED", "true")

	cfg := FromEnv()

	if cfg.Server.Addr != ":9999" {
		t.Fatalf("expected :9999, got %q", cfg.Server.Addr)
	}
	if cfg.Wizard.RunTTL != 5*time.Minute {
		t.Fatalf("expected 5m, got %s", cfg.Wizard.RunTTL)
	}
	if cfg.RateLimit.Limit != 3 {
		t.Fatalf("expected 3, got %d", cfg.RateLimit.Limit)
	}
	if !cfg.RateLimit.Disabled {
		t.Fatal("expected rate limiting disabled")
	}
}

func TestEnvDurationIgnoresGarbage(t *testing.T) {
	t.Setenv("BIZFORM_WIZARD_RUN_TTL", "not-a-duration")

	cfg := FromEnv()
	if cfg.Wizard.RunTTL != 30*time.Minute {
		t.Fatalf("expected fallback 30m, got %s", cfg.Wizard.RunTTL)
	}
}
