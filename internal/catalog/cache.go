package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/saulo-duarte/vinquiz/internal/config"
)

// IDCache holds the id lists used for uniform random picks. Reference data
// is immutable after import, so a TTL is enough to pick up re-imports.
type IDCache interface {
	Get(ctx context.Context, kind Kind) ([]int, bool)
	Set(ctx context.Context, kind Kind, ids []int)
	Invalidate(ctx context.Context)
}

type cacheEntry struct {
	ids       []int
	expiresAt time.Time
}

type memoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[Kind]cacheEntry
}

func NewMemoryCache(ttl time.Duration) IDCache {
	return &memoryCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[Kind]cacheEntry),
	}
}

func (c *memoryCache) Get(_ context.Context, kind Kind) ([]int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[kind]
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.ids, true
}

func (c *memoryCache) Set(_ context.Context, kind Kind, ids []int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[kind] = cacheEntry{ids: ids, expiresAt: c.now().Add(c.ttl)}
}

func (c *memoryCache) Invalidate(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Kind]cacheEntry)
}

const redisKeyPrefix = "vinquiz:catalog:ids:"

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache shares id lists across instances. Redis failures degrade to
// cache misses.
func NewRedisCache(client *redis.Client, ttl time.Duration) IDCache {
	return &redisCache{client: client, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context, kind Kind) ([]int, bool) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+string(kind)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			config.WithContext(ctx).WithError(err).Warn("Catalog cache read failed")
		}
		return nil, false
	}
	var ids []int
	if err := json.Unmarshal(raw, &ids); err != nil {
		config.WithContext(ctx).WithError(err).Warn("Catalog cache entry is corrupt")
		return nil, false
	}
	return ids, true
}

func (c *redisCache) Set(ctx context.Context, kind Kind, ids []int) {
	raw, err := json.Marshal(ids)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, redisKeyPrefix+string(kind), raw, c.ttl).Err(); err != nil {
		config.WithContext(ctx).WithError(err).Warn("Catalog cache write failed")
	}
}

func (c *redisCache) Invalidate(ctx context.Context) {
	keys := make([]string, 0, len(AllKinds))
	for _, k := range AllKinds {
		keys = append(keys, redisKeyPrefix+string(k))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		config.WithContext(ctx).WithError(err).Warn("Catalog cache invalidation failed")
	}
}
