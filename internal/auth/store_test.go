package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testdeck/internal/models"
)

func newSessionContext(t *testing.T) (*scs.SessionManager, context.Context) {
	t.Helper()

	sessions := scs.New()
	sessions.Store = memstore.New()

	ctx, err := sessions.Load(context.Background(), "")
	require.NoError(t, err)

	return sessions, ctx
}

func TestSessionStore_RoundTripsIdentityRecord(t *testing.T) {
	sessions, ctx := newSessionContext(t)
	store := NewSessionStore(sessions)

	user := &models.User{
		ID:         42,
		Name:       "steve",
		Email:      "steve@example.com",
		Role:       "tester",
		Token:      "abc123",
		LoggedInAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	store.Set(ctx, user)

	got := store.Get(ctx)
	require.NotNil(t, got)
	assert.Equal(t, user, got)
}

func TestSessionStore_MissingRecordYieldsNil(t *testing.T) {
	sessions, ctx := newSessionContext(t)
	store := NewSessionStore(sessions)

	assert.Nil(t, store.Get(ctx))
}

func TestSessionStore_SetNilRemovesRecord(t *testing.T) {
	sessions, ctx := newSessionContext(t)
	store := NewSessionStore(sessions)

	store.Set(ctx, &models.User{ID: 42, Token: "abc123"})
	require.NotNil(t, store.Get(ctx))

	store.Set(ctx, nil)

	assert.Nil(t, store.Get(ctx))
	assert.False(t, sessions.Exists(ctx, string(SessionKeyUserRecord)))
}

func TestSessionStore_CorruptRecordDegradesToAnonymous(t *testing.T) {
	sessions, ctx := newSessionContext(t)
	store := NewSessionStore(sessions)

	sessions.Put(ctx, string(SessionKeyUserRecord), []byte("{not valid json"))

	assert.Nil(t, store.Get(ctx))

	// The broken record is dropped so it cannot resurface.
	assert.False(t, sessions.Exists(ctx, string(SessionKeyUserRecord)))
}

func TestSessionStore_OverwriteReplacesRecord(t *testing.T) {
	sessions, ctx := newSessionContext(t)
	store := NewSessionStore(sessions)

	store.Set(ctx, &models.User{ID: 1, Name: "first", Token: "one"})
	store.Set(ctx, &models.User{ID: 2, Name: "second", Token: "two"})

	got := store.Get(ctx)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.ID)
	assert.Equal(t, "two", got.Token)
}
