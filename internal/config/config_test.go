package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		ServerPort:     "8080",
		RequestTimeout: 30 * time.Second,
		DatabaseURL:    "postgres://localhost:5432/fleet",
		JWTSecret:      "some-secret",
		TokenTTL:       24 * time.Hour,
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	t.Run("refuses to start without a signing secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTSecret = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("requires a database URL", func(t *testing.T) {
		cfg := validConfig()
		cfg.DatabaseURL = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("requires a positive token ttl", func(t *testing.T) {
		cfg := validConfig()
		cfg.TokenTTL = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/fleet")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("TOKEN_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}
