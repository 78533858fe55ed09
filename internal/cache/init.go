package cache

import (
	"github.com/flexprice/rates/internal/config"
	"github.com/flexprice/rates/internal/logger"
)

// Initialize builds the process cache
func Initialize(cfg *config.Configuration, log *logger.Logger) Cache {
	log.Infow("initializing cache", "enabled", cfg.Cache.Enabled, "ttl", cfg.Rates.SnapshotTTL().String())
	return NewInMemoryCache(cfg, log)
}
