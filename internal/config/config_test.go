package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yasu691/fragmenta/internal/store"
	"github.com/yasu691/fragmenta/internal/tokenstore"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, name := range []string{"DATA_DIR", "STORE", "TOKEN_STORE", "API_URL", "HOST", "OAUTH_CLIENT_ID", "LOG_LEVEL", "LOG_FORMAT", "SCAN_SECRETS"} {
		// registers the restore, then unsets so godotenv treats it as absent
		t.Setenv(env(name), "")
		require.NoError(t, os.Unsetenv(env(name)))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("FRAGMENTA_DATA_DIR", t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, store.KindBolt, cfg.Store)
	assert.Equal(t, tokenstore.KindKeyring, cfg.TokenStore)
	assert.Equal(t, "github.com", cfg.Host)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.ScanSecrets)
	assert.Empty(t, cfg.APIURL)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	t.Setenv("FRAGMENTA_DATA_DIR", dir)
	t.Setenv("FRAGMENTA_STORE", "SQLite")
	t.Setenv("FRAGMENTA_TOKEN_STORE", "memory")
	t.Setenv("FRAGMENTA_LOG_LEVEL", "debug")
	t.Setenv("FRAGMENTA_LOG_FORMAT", "json")
	t.Setenv("FRAGMENTA_SCAN_SECRETS", "false")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, store.KindSQLite, cfg.Store)
	assert.Equal(t, tokenstore.KindMemory, cfg.TokenStore)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.ScanSecrets)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("FRAGMENTA_DATA_DIR", t.TempDir())
	t.Setenv("FRAGMENTA_STORE", "bolt")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("FRAGMENTA_API_URL=https://ghe.example.com/api/v3\nFRAGMENTA_STORE=sqlite\n"), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "https://ghe.example.com/api/v3", cfg.APIURL)

	// the real environment wins over the file
	assert.Equal(t, store.KindBolt, cfg.Store)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "log level", key: "FRAGMENTA_LOG_LEVEL", value: "loud"},
		{name: "log format", key: "FRAGMENTA_LOG_FORMAT", value: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("FRAGMENTA_DATA_DIR", t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
		})
	}
}
