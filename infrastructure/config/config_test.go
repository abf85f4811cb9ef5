package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.EnableCORS)
	assert.False(t, cfg.LoaderLinkAllRows)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ENABLE_CORS", "false")
	t.Setenv("LOADER_LINK_ALL_ROWS", "yes")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.ServerAddress)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.EnableCORS)
	assert.True(t, cfg.LoaderLinkAllRows)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())

	cfg.ServerAddress = ":8080"
	assert.NoError(t, cfg.Validate())
}
