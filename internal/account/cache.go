package account

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "profile:"

// ProfileCache keeps the outward user view in Redis under a short TTL so
// repeated profile reads skip the database. It is best-effort: every Redis
// failure degrades to a cache miss, and a nil cache is a valid no-op.
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProfileCache wraps a Redis client. A nil client yields a nil cache,
// which all methods tolerate.
func NewProfileCache(client *redis.Client, ttl time.Duration) *ProfileCache {
	if client == nil {
		return nil
	}
	return &ProfileCache{client: client, ttl: ttl}
}

// Get returns the cached view for an account ID, if present.
func (c *ProfileCache) Get(ctx context.Context, id string) (User, bool) {
	if c == nil {
		return User{}, false
	}
	raw, err := c.client.Get(ctx, cacheKeyPrefix+id).Bytes()
	if err != nil {
		return User{}, false
	}
	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return User{}, false
	}
	return user, true
}

// Set stores the view under the configured TTL.
func (c *ProfileCache) Set(ctx context.Context, user User) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return
	}
	c.client.Set(ctx, cacheKeyPrefix+user.ID, raw, c.ttl)
}

// Invalidate drops the cached view after a profile mutation.
func (c *ProfileCache) Invalidate(ctx context.Context, id string) {
	if c == nil {
		return
	}
	c.client.Del(ctx, cacheKeyPrefix+id)
}
