package core

import (
	"admin/internal/cache"
	"admin/internal/models"

	"go.uber.org/zap"
)

// NewCache builds the configured cache backend. The "none" type returns nil;
// rate limiting and snapshot serving degrade gracefully without a cache.
func NewCache(config models.CacheConfiguration) cache.ICache {
	switch config.Type {
	case "redis":
		client, err := cache.NewRueidisCache(
			config.Redis.Hosts,
			config.Redis.Password,
			config.Redis.TLSEnabled,
			config.Redis.TLSServerName,
		)
		if err != nil {
			zap.L().Fatal("Failed to initialize cache", zap.Error(err))
		}
		return client
	case "none":
		zap.L().Info("Running without cache")
		return nil
	default:
		return nil
	}
}
