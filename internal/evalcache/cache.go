// Package evalcache memoizes compatibility results by a structural hash of
// the (configuration, catalog version) pair. Because the catalog version is
// part of the key, a catalog change invalidates every cached result without
// an explicit flush. The cache is an optimization only: the engine stays
// correct without it.
package evalcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"rigforge/internal/model"

	"github.com/go-redis/redis/v8"
)

const (
	// DefaultTTL is the default lifetime of a cached evaluation result.
	DefaultTTL = 1 * time.Hour

	// cacheKeyPrefix is the prefix for Redis cache keys
	cacheKeyPrefix = "eval:result:"
)

// ResultCache caches CompatibilityResults. Redis is the primary store when
// configured; an in-memory map is always kept as fallback. Thread-safe.
type ResultCache struct {
	mu    sync.RWMutex
	items map[string]*cacheItem

	redisClient *redis.Client
	ttl         time.Duration
}

type cacheItem struct {
	result    *model.CompatibilityResult
	expiresAt time.Time
}

// NewResultCache creates an in-memory-only cache with the default TTL.
func NewResultCache() *ResultCache {
	return NewResultCacheWithTTL(DefaultTTL)
}

// NewResultCacheWithTTL creates a cache with a custom TTL.
func NewResultCacheWithTTL(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	cache := &ResultCache{
		items: make(map[string]*cacheItem),
		ttl:   ttl,
	}
	go cache.cleanup()
	return cache
}

// WithRedis configures Redis as the primary storage. The in-memory map
// remains the fallback when Redis is unavailable.
func (c *ResultCache) WithRedis(client *redis.Client) *ResultCache {
	c.redisClient = client
	return c
}

// HasRedis reports whether a Redis client is configured.
func (c *ResultCache) HasRedis() bool {
	return c.redisClient != nil
}

// Key computes the structural cache key for a snapshot under a catalog
// version. Identical snapshots against an identical catalog share a key.
func Key(cfg *model.Configuration, catalogVersion string) string {
	payload, err := json.Marshal(cfg)
	if err != nil {
		// Unmarshalable snapshots never hit the cache.
		return ""
	}
	h := sha256.New()
	h.Write(payload)
	h.Write([]byte(catalogVersion))
	return cacheKeyPrefix + hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached result for the key, or nil on a miss. Redis is
// consulted first, then the in-memory fallback.
func (c *ResultCache) Get(ctx context.Context, key string) *model.CompatibilityResult {
	if key == "" {
		return nil
	}
	if c.redisClient != nil {
		if result := c.getFromRedis(ctx, key); result != nil {
			return result
		}
	}
	return c.getFromMemory(key)
}

// Set stores a result under the key in both Redis and memory.
func (c *ResultCache) Set(ctx context.Context, key string, result *model.CompatibilityResult) {
	if key == "" || result == nil {
		return
	}
	if c.redisClient != nil {
		c.setInRedis(ctx, key, result)
	}
	c.mu.Lock()
	c.items[key] = &cacheItem{result: result, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// Delete removes a key from both stores.
func (c *ResultCache) Delete(ctx context.Context, key string) {
	if c.redisClient != nil {
		_ = c.redisClient.Del(ctx, key).Err()
	}
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// Size returns the number of in-memory entries, expired ones included.
func (c *ResultCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *ResultCache) getFromRedis(ctx context.Context, key string) *model.CompatibilityResult {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	data, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		// Miss or Redis error, fall back to memory.
		return nil
	}

	var result model.CompatibilityResult
	if err := json.Unmarshal(data, &result); err != nil {
		// Corrupted entry, drop it.
		_ = c.redisClient.Del(ctx, key)
		return nil
	}
	return &result
}

func (c *ResultCache) setInRedis(ctx context.Context, key string, result *model.CompatibilityResult) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	// Ignore errors, the memory cache is the fallback.
	_ = c.redisClient.Set(ctx, key, data, c.ttl).Err()
}

func (c *ResultCache) getFromMemory(key string) *model.CompatibilityResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[key]
	if !ok || time.Now().After(item.expiresAt) {
		return nil
	}
	return item.result
}

// cleanup evicts expired in-memory entries periodically.
func (c *ResultCache) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		c.mu.Lock()
		for key, item := range c.items {
			if now.After(item.expiresAt) {
				delete(c.items, key)
			}
		}
		c.mu.Unlock()
	}
}
