package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, ":3000", cfg.Address())
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 5*time.Minute, cfg.ProfileCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownPeriod)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresDatabaseOutsideDev(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/accounts")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.IsDev())
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL", "45m")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("PROFILE_CACHE_TTL", "30s")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "5")
	t.Setenv("PORT", ":8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 45*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 30*time.Second, cfg.ProfileCacheTTL)
	assert.Equal(t, 5*time.Second, cfg.ShutdownPeriod)
	assert.Equal(t, ":8080", cfg.Address())
}

func TestLoadRejectsBadDurations(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL", "not-a-duration")

	_, err := Load()
	assert.Error(t, err)
}
