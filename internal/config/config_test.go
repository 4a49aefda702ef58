package config

import (
	"testing"
	"time"
)

func TestLoad_RequiresAPIKey(t *testing.T) {
	t.Setenv("APISPORTS_API_KEY", "")
	if _, err := Load(); err == nil {
		t.Fatal("Load without APISPORTS_API_KEY: expected error")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APISPORTS_API_KEY", "abc123")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "abc123" {
		t.Fatalf("APIKey: got %q", cfg.APIKey)
	}
	if cfg.UseRapidAPI {
		t.Fatal("UseRapidAPI: got true, want false")
	}
	if cfg.Timezone != "America/New_York" {
		t.Fatalf("Timezone: got %q", cfg.Timezone)
	}
	if cfg.ProxyPort != 8000 {
		t.Fatalf("ProxyPort: got %d", cfg.ProxyPort)
	}
	if !cfg.RateLimitEnabled {
		t.Fatal("RateLimitEnabled: got false, want true")
	}
	if cfg.RateLimitWindow != time.Minute {
		t.Fatalf("RateLimitWindow: got %v", cfg.RateLimitWindow)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APISPORTS_API_KEY", "abc123")
	t.Setenv("APISPORTS_USE_RAPIDAPI", "true")
	t.Setenv("APISPORTS_TIMEZONE", "Europe/London")
	t.Setenv("PROXY_PORT", "9000")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.UseRapidAPI {
		t.Fatal("UseRapidAPI: got false, want true")
	}
	if cfg.Timezone != "Europe/London" {
		t.Fatalf("Timezone: got %q", cfg.Timezone)
	}
	if cfg.ProxyPort != 9000 {
		t.Fatalf("ProxyPort: got %d", cfg.ProxyPort)
	}
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "https://b.example" {
		t.Fatalf("CORSAllowOrigins: got %v", cfg.CORSAllowOrigins)
	}
	if cfg.RateLimitEnabled {
		t.Fatal("RateLimitEnabled: got true, want false")
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_STR", "value")
	t.Setenv("X_INT", "42")
	t.Setenv("X_BAD_INT", "forty-two")
	t.Setenv("X_BOOL", "true")

	if got := envOr("X_STR", "fallback"); got != "value" {
		t.Fatalf("envOr: got %q", got)
	}
	if got := envOr("X_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("envOr missing: got %q", got)
	}
	if got := envInt("X_INT", 7); got != 42 {
		t.Fatalf("envInt: got %d", got)
	}
	if got := envInt("X_BAD_INT", 7); got != 7 {
		t.Fatalf("envInt bad: got %d", got)
	}
	if got := envBool("X_BOOL", false); got != true {
		t.Fatalf("envBool: got %v", got)
	}
	if got := envList("X_MISSING", []string{"a"}); len(got) != 1 || got[0] != "a" {
		t.Fatalf("envList missing: got %v", got)
	}
}
