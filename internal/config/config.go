// Package config provides centralized configuration loaded from
// environment variables. Shared by the CLI subcommands and the proxy.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is populated from environment variables once at startup.
type Config struct {
	// API client
	APIKey      string
	UseRapidAPI bool
	Timezone    string

	// Proxy server
	ProxyHost string
	ProxyPort int

	// CORS
	CORSAllowOrigins []string

	// Rate limiting (proxy-side, per client IP)
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Export pacing: minimum spacing between upstream requests
	ExportInterval time.Duration
}

// Load reads configuration from environment variables with sensible
// defaults. The API key is the only required value.
func Load() (*Config, error) {
	apiKey := envOr("APISPORTS_API_KEY", "")
	if apiKey == "" {
		return nil, fmt.Errorf("APISPORTS_API_KEY must be set")
	}

	return &Config{
		APIKey:      apiKey,
		UseRapidAPI: envBool("APISPORTS_USE_RAPIDAPI", false),
		Timezone:    envOr("APISPORTS_TIMEZONE", "America/New_York"),

		ProxyHost: envOr("PROXY_HOST", "127.0.0.1"),
		ProxyPort: envInt("PROXY_PORT", envInt("PORT", 8000)),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		ExportInterval: time.Duration(envInt("EXPORT_INTERVAL_MS", 1500)) * time.Millisecond,
	}, nil
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
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

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
