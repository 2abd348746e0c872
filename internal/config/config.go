// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/yasu691/fragmenta/internal/application"
	"github.com/yasu691/fragmenta/internal/store"
	"github.com/yasu691/fragmenta/internal/tokenstore"
)

// Config holds the process-level settings. Per-user preferences
// (retry policy, auto-save) live in the store instead.
type Config struct {
	// DataDir is where the general-tier database lives
	DataDir string

	// Store selects the general-tier backend
	Store store.Kind

	// TokenStore selects the secret tier
	TokenStore tokenstore.Kind

	// APIURL is the GitHub REST root; empty means api.github.com
	APIURL string

	// Host is the GitHub host used for gh CLI tokens and the device flow
	Host string

	// OAuthClientID is the OAuth App used by "config login"
	OAuthClientID string

	// LogLevel and LogFormat configure the slog handler
	LogLevel  slog.Level
	LogFormat string

	// ScanSecrets enables the gitleaks check before submitting
	ScanSecrets bool
}

// Load reads the configuration. Files are loaded with godotenv first
// (default ".env"); missing files are ignored and real environment
// variables take precedence.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}

		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := &Config{
		DataDir:       os.Getenv(env("DATA_DIR")),
		Store:         store.Kind(strings.ToLower(envOrDefault(env("STORE"), string(store.KindBolt)))),
		TokenStore:    tokenstore.Kind(strings.ToLower(envOrDefault(env("TOKEN_STORE"), string(tokenstore.KindKeyring)))),
		APIURL:        os.Getenv(env("API_URL")),
		Host:          envOrDefault(env("HOST"), "github.com"),
		OAuthClientID: os.Getenv(env("OAUTH_CLIENT_ID")),
		LogFormat:     strings.ToLower(envOrDefault(env("LOG_FORMAT"), "text")),
		ScanSecrets:   envOrDefaultBool(env("SCAN_SECRETS"), true),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(envOrDefault(env("LOG_LEVEL"), "warn"))); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", env("LOG_LEVEL"), err)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid %s %q (expected text or json)", env("LOG_FORMAT"), cfg.LogFormat)
	}

	if cfg.DataDir == "" {
		dir, err := application.DataDirectory()
		if err != nil {
			return nil, err
		}

		cfg.DataDir = dir
	}

	return cfg, nil
}

func env(name string) string {
	return application.EnvPrefix + name
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envOrDefaultBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}

	return fallback
}
