package routes

import (
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testrunner-pro/accounts/internal/config"
	"github.com/testrunner-pro/accounts/internal/logging"
)

func TestProfileCacheServesAndInvalidates(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	cfg := config.Config{
		AppEnv:          "test",
		JWTSecret:       testSecret,
		TokenTTL:        time.Hour,
		BcryptCost:      4,
		ProfileCacheTTL: time.Minute,
	}
	app := fiber.New()
	require.NoError(t, Setup(app, Deps{Cfg: cfg, Cache: cache, Logger: logging.Discard()}))

	tok, _ := register(t, app, "ada@example.com", "longenough", "Ada")

	// First read populates the cache, second read is served from it.
	resp, _ := doJSON(t, app, fiber.MethodGet, "/api/users/profile", "", tok)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotEmpty(t, mr.Keys())

	resp, user := doJSON(t, app, fiber.MethodGet, "/api/users/profile", "", tok)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Ada", user["name"])

	// An update invalidates the cached view; the next read sees the change.
	resp, _ = doJSON(t, app, fiber.MethodPut, "/api/users/profile", `{"name":"Ada L."}`, tok)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, user = doJSON(t, app, fiber.MethodGet, "/api/users/profile", "", tok)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Ada L.", user["name"])
}
