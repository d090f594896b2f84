package account

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*ProfileCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewProfileCache(client, time.Minute), mr
}

func TestProfileCacheRoundTrip(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	user := User{ID: "id-1", Email: "ada@example.com", Name: "Ada", Username: "ada", Status: StatusActive, Role: RoleUser}
	cache.Set(ctx, user)

	got, ok := cache.Get(ctx, "id-1")
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestProfileCacheMiss(t *testing.T) {
	cache, _ := setupCache(t)

	_, ok := cache.Get(context.Background(), "absent")
	assert.False(t, ok)
}

func TestProfileCacheInvalidate(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	cache.Set(ctx, User{ID: "id-1", Name: "Ada"})
	cache.Invalidate(ctx, "id-1")

	_, ok := cache.Get(ctx, "id-1")
	assert.False(t, ok)
}

func TestProfileCacheExpiry(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	cache.Set(ctx, User{ID: "id-1", Name: "Ada"})
	mr.FastForward(2 * time.Minute)

	_, ok := cache.Get(ctx, "id-1")
	assert.False(t, ok)
}

func TestNilProfileCacheIsNoOp(t *testing.T) {
	var cache *ProfileCache
	ctx := context.Background()

	cache.Set(ctx, User{ID: "id-1"})
	cache.Invalidate(ctx, "id-1")
	_, ok := cache.Get(ctx, "id-1")
	assert.False(t, ok)

	assert.Nil(t, NewProfileCache(nil, time.Minute))
}
