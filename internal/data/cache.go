package data

import (
	"context"
	"log/slog"
	"time"

	"testdeck/internal/config"
)

// CacheProvider is a byte-oriented TTL cache for upstream responses.
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Size(ctx context.Context) int
}

// NewCacheProvider returns the cache implementation named by config.
func NewCacheProvider(cfg *config.Config, logger *slog.Logger) (CacheProvider, error) {
	switch cfg.Cache.Type {
	case "redis":
		return NewRedisCache(cfg, logger)
	case "memory":
		fallthrough
	default:
		return NewMemCache(), nil
	}
}
