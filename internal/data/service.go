package data

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"testdeck/internal/upstream"
)

const environmentsCacheKey = "environments"

// ReferenceSource is the slice of the upstream catalog the reference cache
// reads from.
type ReferenceSource interface {
	ListEnvironments(ctx context.Context) ([]upstream.Environment, error)
}

// Service serves slow-changing upstream reference data through a TTL cache.
// Environments are public reference data, so fetches go out without
// credentials.
type Service struct {
	source ReferenceSource
	cache  CacheProvider
	ttl    time.Duration
	logger *slog.Logger
}

func NewService(source ReferenceSource, cache CacheProvider, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{
		source: source,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Environments returns the environment list, from cache when fresh.
func (s *Service) Environments(ctx context.Context) ([]upstream.Environment, error) {
	if raw, ok := s.cache.Get(ctx, environmentsCacheKey); ok {
		var environments []upstream.Environment
		if err := json.Unmarshal(raw, &environments); err == nil {
			return environments, nil
		}
		// Undecodable cache entries are dropped and refetched.
		s.cache.Delete(ctx, environmentsCacheKey)
	}

	return s.Refresh(ctx)
}

// Refresh fetches the environment list upstream and replaces the cached copy.
func (s *Service) Refresh(ctx context.Context) ([]upstream.Environment, error) {
	environments, err := s.source.ListEnvironments(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(environments); err == nil {
		s.cache.Set(ctx, environmentsCacheKey, raw, s.ttl)
	}

	return environments, nil
}
