package data

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testdeck/internal/upstream"
)

type stubSource struct {
	environments []upstream.Environment
	err          error
	calls        int
}

func (s *stubSource) ListEnvironments(ctx context.Context) ([]upstream.Environment, error) {
	s.calls++
	return s.environments, s.err
}

func newReferenceService(source ReferenceSource) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(source, NewMemCache(), time.Minute, logger)
}

func TestService_FetchesThroughOnColdCache(t *testing.T) {
	source := &stubSource{environments: []upstream.Environment{{ID: 1, Name: "staging"}}}
	service := newReferenceService(source)

	environments, err := service.Environments(t.Context())
	require.NoError(t, err)

	assert.Len(t, environments, 1)
	assert.Equal(t, 1, source.calls)
}

func TestService_ServesRepeatReadsFromCache(t *testing.T) {
	source := &stubSource{environments: []upstream.Environment{{ID: 1, Name: "staging"}}}
	service := newReferenceService(source)

	_, err := service.Environments(t.Context())
	require.NoError(t, err)

	environments, err := service.Environments(t.Context())
	require.NoError(t, err)

	assert.Len(t, environments, 1)
	assert.Equal(t, 1, source.calls)
}

func TestService_SurfacesSourceFailure(t *testing.T) {
	source := &stubSource{err: errors.New("upstream unreachable")}
	service := newReferenceService(source)

	_, err := service.Environments(t.Context())
	assert.Error(t, err)
}

func TestService_RefreshReplacesCachedCopy(t *testing.T) {
	source := &stubSource{environments: []upstream.Environment{{ID: 1, Name: "staging"}}}
	service := newReferenceService(source)

	_, err := service.Environments(t.Context())
	require.NoError(t, err)

	source.environments = []upstream.Environment{
		{ID: 1, Name: "staging"},
		{ID: 2, Name: "production"},
	}

	_, err = service.Refresh(t.Context())
	require.NoError(t, err)

	environments, err := service.Environments(t.Context())
	require.NoError(t, err)
	assert.Len(t, environments, 2)
	assert.Equal(t, 2, source.calls)
}

func TestService_UndecodableCacheEntryIsRefetched(t *testing.T) {
	source := &stubSource{environments: []upstream.Environment{{ID: 1, Name: "staging"}}}
	cache := NewMemCache()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewService(source, cache, time.Minute, logger)

	cache.Set(t.Context(), environmentsCacheKey, []byte("{corrupt"), time.Minute)

	environments, err := service.Environments(t.Context())
	require.NoError(t, err)

	assert.Len(t, environments, 1)
	assert.Equal(t, 1, source.calls)
}
