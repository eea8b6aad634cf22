package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ATLAS_JWT_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 64, cfg.EventBuffer)
	assert.Equal(t, 2*time.Second, cfg.ChangeBlock)
	assert.Empty(t, cfg.RulesFile)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("ATLAS_JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("ATLAS_JWT_SECRET"))

	_, err := loadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ATLAS_JWT_SECRET")
}

func TestLoadConfigFromDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"ATLAS_JWT_SECRET=from-dotenv-0123456789abcdef012345\n"+
			"ATLAS_HTTP_PORT=9090\n"+
			"ATLAS_ALLOWED_ORIGINS=https://a.example.com,https://b.example.com\n"), 0o600))
	// godotenv never overrides variables that are already set.
	t.Setenv("ATLAS_HTTP_PORT", "")
	require.NoError(t, os.Unsetenv("ATLAS_HTTP_PORT"))
	t.Setenv("ATLAS_JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("ATLAS_JWT_SECRET"))
	t.Setenv("ATLAS_ALLOWED_ORIGINS", "")
	require.NoError(t, os.Unsetenv("ATLAS_ALLOWED_ORIGINS"))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, "from-dotenv-0123456789abcdef012345", cfg.JWTSecret)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}
