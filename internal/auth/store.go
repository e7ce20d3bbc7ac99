package auth

import (
	"context"
	"encoding/json"

	"github.com/alexedwards/scs/v2"

	"testdeck/internal/models"
)

// SessionStore persists the authenticated identity record inside the session
// data under a fixed key, serialized as JSON. It is the durable copy of the
// session: the record survives page reloads (and server restarts when the
// redis store is configured).
type SessionStore struct {
	sessions *scs.SessionManager
}

func NewSessionStore(sessions *scs.SessionManager) *SessionStore {
	return &SessionStore{sessions: sessions}
}

// Get returns the persisted identity record, or nil when there is none. A
// corrupt or undecodable record is treated as absence, never as an error: the
// application degrades to logged-out instead of failing, and the broken record
// is removed so it cannot resurface.
func (s *SessionStore) Get(ctx context.Context) *models.User {
	raw := s.sessions.GetBytes(ctx, string(SessionKeyUserRecord))
	if len(raw) == 0 {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		s.sessions.Remove(ctx, string(SessionKeyUserRecord))
		return nil
	}

	return &user
}

// Set overwrites the persisted record. A nil user removes it entirely, so a
// logout leaves no residue behind.
func (s *SessionStore) Set(ctx context.Context, user *models.User) {
	if user == nil {
		s.sessions.Remove(ctx, string(SessionKeyUserRecord))
		return
	}

	data, err := json.Marshal(user)
	if err != nil {
		// Marshalling a plain record cannot fail; leave the store untouched
		// rather than write a partial value.
		return
	}

	s.sessions.Put(ctx, string(SessionKeyUserRecord), data)
}
