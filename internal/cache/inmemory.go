package cache

import (
	"context"
	"strings"
	"time"

	"github.com/flexprice/rates/internal/config"
	"github.com/flexprice/rates/internal/logger"
	goCache "github.com/patrickmn/go-cache"
)

// DefaultExpiration is the default expiration time for cache entries
const DefaultExpiration = 30 * time.Minute

// DefaultCleanupInterval is how often expired items are removed from the cache
const DefaultCleanupInterval = 1 * time.Hour

// InMemoryCache implements the Cache interface using github.com/patrickmn/go-cache.
// Every operation is a no-op when the cache is disabled in config.
type InMemoryCache struct {
	cache   *goCache.Cache
	enabled bool
	logger  *logger.Logger
}

func NewInMemoryCache(cfg *config.Configuration, log *logger.Logger) *InMemoryCache {
	expiration := DefaultExpiration
	if ttl := cfg.Rates.SnapshotTTL(); ttl > 0 {
		expiration = ttl
	}

	return &InMemoryCache{
		cache:   goCache.New(expiration, DefaultCleanupInterval),
		enabled: cfg.Cache.Enabled,
		logger:  log,
	}
}

func (c *InMemoryCache) Get(ctx context.Context, key string) (interface{}, bool) {
	if !c.enabled {
		return nil, false
	}
	value, found := c.cache.Get(key)
	if found {
		c.logger.WithContext(ctx).Debugw("cache hit", "key", key)
	}
	return value, found
}

func (c *InMemoryCache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) {
	if !c.enabled {
		return
	}
	if expiration == 0 {
		expiration = goCache.DefaultExpiration
	}
	c.cache.Set(key, value, expiration)
}

func (c *InMemoryCache) Delete(_ context.Context, key string) {
	if !c.enabled {
		return
	}
	c.cache.Delete(key)
}

func (c *InMemoryCache) DeleteByPrefix(ctx context.Context, prefix string) {
	if !c.enabled {
		return
	}

	deleted := 0
	for k := range c.cache.Items() {
		if strings.HasPrefix(k, prefix) {
			c.cache.Delete(k)
			deleted++
		}
	}
	c.logger.WithContext(ctx).Debugw("cache keys deleted", "prefix", prefix, "count", deleted)
}

func (c *InMemoryCache) Flush(_ context.Context) {
	if !c.enabled {
		return
	}
	c.cache.Flush()
}

// ItemCount is the number of items held, expired ones included
func (c *InMemoryCache) ItemCount() int {
	return c.cache.ItemCount()
}
