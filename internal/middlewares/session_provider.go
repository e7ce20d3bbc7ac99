package middlewares

import (
	"net/http"

	"testdeck/internal/models"
)

//go:generate mockgen -source=session_provider.go -destination=../mocks/session.go -package=mocks

// SessionProvider owns the durable copy of the current session. The identity
// record and the pending redirect target live here; everything else derives
// from them.
type SessionProvider interface {
	LoadAndSave(next http.Handler) http.Handler

	// CurrentUser returns the persisted identity record, or false when the
	// session is anonymous (including when the stored record is corrupt).
	CurrentUser(ctx *AppContext) (user *models.User, ok bool)
	// IsAuthenticated is always equivalent to CurrentUser returning ok.
	IsAuthenticated(ctx *AppContext) bool
	SetUser(ctx *AppContext, user *models.User)
	RenewToken(ctx *AppContext) error
	// Destroy drops the session and its persisted record entirely.
	Destroy(ctx *AppContext) error

	SetRedirectAfterLogin(ctx *AppContext, target string)
	ConsumeRedirectAfterLogin(ctx *AppContext) string

	SetOAuthLoginAttempt(ctx *AppContext, attempt *models.OAuthLoginAttempt)
	ConsumeOAuthLoginAttempt(ctx *AppContext) (*models.OAuthLoginAttempt, bool)
}
