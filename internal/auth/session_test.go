package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/common/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testdeck/internal/config"
	"testdeck/internal/middlewares"
	"testdeck/internal/models"
)

func newTestSessionManager(t *testing.T) *SessionManager {
	t.Helper()

	cfg := &config.Config{
		Sessions: config.SessionConfig{
			Store:        "memory",
			Name:         "testdeck_session",
			FixedTimeout: model.Duration(time.Hour),
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	manager, err := NewSessionManager(logger, cfg)
	require.NoError(t, err)

	return manager
}

func newAppContext(t *testing.T, manager *SessionManager) *middlewares.AppContext {
	t.Helper()

	ctx, err := manager.Load(context.Background(), "")
	require.NoError(t, err)

	return &middlewares.AppContext{Context: ctx, SessionManager: manager}
}

func TestSessionManager_AnonymousByDefault(t *testing.T) {
	manager := newTestSessionManager(t)
	appCtx := newAppContext(t, manager)

	user, ok := manager.CurrentUser(appCtx)
	assert.Nil(t, user)
	assert.False(t, ok)
	assert.False(t, manager.IsAuthenticated(appCtx))
}

// IsAuthenticated is derived from the stored record, so the two views can
// never disagree through any sequence of writes.
func TestSessionManager_AuthenticatedViewTracksRecord(t *testing.T) {
	manager := newTestSessionManager(t)
	appCtx := newAppContext(t, manager)

	manager.SetUser(appCtx, &models.User{ID: 42, Token: "abc123"})
	_, ok := manager.CurrentUser(appCtx)
	assert.True(t, ok)
	assert.True(t, manager.IsAuthenticated(appCtx))

	manager.SetUser(appCtx, nil)
	_, ok = manager.CurrentUser(appCtx)
	assert.False(t, ok)
	assert.False(t, manager.IsAuthenticated(appCtx))
}

func TestSessionManager_RecordSurvivesReload(t *testing.T) {
	manager := newTestSessionManager(t)
	appCtx := newAppContext(t, manager)

	manager.SetUser(appCtx, &models.User{ID: 42, Name: "steve", Token: "abc123"})

	token, _, err := manager.Commit(appCtx)
	require.NoError(t, err)

	// A fresh load with the same session token models a page reload.
	reloaded, err := manager.Load(context.Background(), token)
	require.NoError(t, err)
	reloadedCtx := &middlewares.AppContext{Context: reloaded, SessionManager: manager}

	user, ok := manager.CurrentUser(reloadedCtx)
	require.True(t, ok)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "abc123", user.Token)
}

func TestSessionManager_DestroyLeavesNoResidue(t *testing.T) {
	manager := newTestSessionManager(t)
	appCtx := newAppContext(t, manager)

	manager.SetUser(appCtx, &models.User{ID: 42, Token: "abc123"})
	require.True(t, manager.IsAuthenticated(appCtx))

	require.NoError(t, manager.Destroy(appCtx))

	assert.False(t, manager.IsAuthenticated(appCtx))
}

func TestSessionManager_RedirectTargetIsConsumedOnce(t *testing.T) {
	manager := newTestSessionManager(t)
	appCtx := newAppContext(t, manager)

	manager.SetRedirectAfterLogin(appCtx, "/projects/7/test-runs")

	assert.Equal(t, "/projects/7/test-runs", manager.ConsumeRedirectAfterLogin(appCtx))
	assert.Empty(t, manager.ConsumeRedirectAfterLogin(appCtx))
}

func TestSessionManager_OAuthAttemptRoundTrip(t *testing.T) {
	manager := newTestSessionManager(t)
	appCtx := newAppContext(t, manager)

	attempt := &models.OAuthLoginAttempt{
		State:        "state-abc",
		Nonce:        "nonce-xyz",
		CodeVerifier: "verifier-123",
	}

	manager.SetOAuthLoginAttempt(appCtx, attempt)

	got, ok := manager.ConsumeOAuthLoginAttempt(appCtx)
	require.True(t, ok)
	assert.Equal(t, attempt, got)

	// One callback per attempt.
	_, ok = manager.ConsumeOAuthLoginAttempt(appCtx)
	assert.False(t, ok)
}
