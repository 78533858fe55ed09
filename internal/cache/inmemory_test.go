package cache

import (
	"context"
	"testing"

	"github.com/flexprice/rates/internal/config"
	"github.com/flexprice/rates/internal/logger"
	"github.com/stretchr/testify/assert"
)

func newTestCache(enabled bool) *InMemoryCache {
	cfg := config.GetDefaultConfig()
	cfg.Cache.Enabled = enabled
	return NewInMemoryCache(cfg, logger.NewNopLogger())
}

func TestInMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(true)

	c.Set(ctx, GenerateKey(PrefixRateSnapshot, "pdef_1"), "one", 0)
	c.Set(ctx, GenerateKey(PrefixRateSnapshot, "pdef_2"), "two", 0)
	c.Set(ctx, GenerateKey(PrefixActiveDiscounts, "tenant_1", "2025-07-01"), "discounts", 0)

	value, found := c.Get(ctx, "rate_snapshot:v1::pdef_1")
	assert.True(t, found)
	assert.Equal(t, "one", value)

	c.DeleteByPrefix(ctx, PrefixRateSnapshot)
	_, found = c.Get(ctx, GenerateKey(PrefixRateSnapshot, "pdef_2"))
	assert.False(t, found)
	_, found = c.Get(ctx, GenerateKey(PrefixActiveDiscounts, "tenant_1", "2025-07-01"))
	assert.True(t, found)

	c.Delete(ctx, GenerateKey(PrefixActiveDiscounts, "tenant_1", "2025-07-01"))
	assert.Equal(t, 0, c.ItemCount())
}

func TestInMemoryCache_Disabled(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(false)

	c.Set(ctx, "key", "value", 0)
	_, found := c.Get(ctx, "key")
	assert.False(t, found)
	assert.Equal(t, 0, c.ItemCount())
}
