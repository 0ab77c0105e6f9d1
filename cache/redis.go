package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const roleTTL = 5 * time.Minute

// RoleCache keeps role lookups for the predicate endpoints out of the
// store. Every role write deletes the entry, so a cached role is never
// older than the last transition. A nil RoleCache disables caching.
type RoleCache struct {
	rdb *redis.Client
}

// Connect pings the redis at addr. Returns nil when addr is unset or the
// ping fails; the service runs fine without the cache.
func Connect(addr string) *RoleCache {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("Failed to connect Redis: %v", err)
		return nil
	}

	log.Println("Redis connected")
	return &RoleCache{rdb: rdb}
}

func (c *RoleCache) GetRole(ctx context.Context, email string) (string, bool) {
	if c == nil || c.rdb == nil {
		return "", false
	}
	role, err := c.rdb.Get(ctx, key(email)).Result()
	if err != nil {
		return "", false
	}
	return role, true
}

func (c *RoleCache) SetRole(ctx context.Context, email, role string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, key(email), role, roleTTL).Err(); err != nil {
		log.Printf("Failed to cache role for %s: %v", email, err)
	}
}

func (c *RoleCache) Invalidate(ctx context.Context, email string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, key(email)).Err(); err != nil {
		log.Printf("Failed to drop cached role for %s: %v", email, err)
	}
}

func key(email string) string {
	return "role:" + email
}
