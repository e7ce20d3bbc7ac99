package upstream

import (
	"context"

	"testdeck/internal/models"
)

const HeaderAuthorization = "Authorization"

// CredentialHeaders derives the credential headers for the given session
// identity. It is pure: no session (or a session without a token) yields an
// empty map, so unauthenticated requests go out without credentials instead of
// failing here. Authorization enforcement belongs to the upstream server.
func CredentialHeaders(user *models.User) map[string]string {
	if user == nil || user.Token == "" {
		return map[string]string{}
	}

	return map[string]string{
		HeaderAuthorization: "Bearer " + user.Token,
	}
}

type userContextKey struct{}

// ContextWithUser attaches the session identity whose credentials should be
// injected into requests issued with the returned context.
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	if user == nil {
		return ctx
	}
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext returns the session identity attached by ContextWithUser.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*models.User)
	return user, ok && user != nil
}
