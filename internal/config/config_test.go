package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("COINDCX_API_KEY", "")
	t.Setenv("COINDCX_SECRET_KEY", "")
	t.Setenv("COINDCX_BASE_URL", "")
	t.Setenv("COINDCX_PUBLIC_URL", "")
	t.Setenv("COINDCX_TIMEOUT", "")
	t.Setenv("DEBUG", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.coindcx.com", cfg.BaseURL)
	assert.Equal(t, "https://public.coindcx.com", cfg.PublicURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.SandboxMode)
	assert.False(t, cfg.HasCredentials())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("COINDCX_API_KEY", "key")
	t.Setenv("COINDCX_SECRET_KEY", "secret")
	t.Setenv("COINDCX_BASE_URL", "https://sandbox.coindcx.com")
	t.Setenv("COINDCX_TIMEOUT", "5s")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "secret", cfg.SecretKey)
	assert.Equal(t, "https://sandbox.coindcx.com", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.HasCredentials())
}

func TestLoadRejectsHalfConfiguredCredentials(t *testing.T) {
	t.Setenv("COINDCX_API_KEY", "key")
	t.Setenv("COINDCX_SECRET_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadIgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("COINDCX_API_KEY", "")
	t.Setenv("COINDCX_SECRET_KEY", "")
	t.Setenv("COINDCX_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}
