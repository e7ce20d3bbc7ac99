package auth

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"testdeck/internal/metrics"
	"testdeck/internal/middlewares"
	"testdeck/internal/models"
	"testdeck/internal/upstream"
)

// Authenticator owns the transitions between anonymous and authenticated. All
// session-mutating calls are serialized through one mutex, so when two logins
// race the persisted record always reflects the call that committed last.
type Authenticator struct {
	logger *slog.Logger
	mu     sync.Mutex
}

func NewAuthenticator(logger *slog.Logger) *Authenticator {
	return &Authenticator{logger: logger}
}

// Login exchanges credentials upstream and, on success, commits the identity
// record to the session before returning. A failed login leaves the session
// exactly as it was; there is no retry at this layer.
func (a *Authenticator) Login(ctx *middlewares.AppContext, credentials upstream.LoginRequest) (*models.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	user, err := ctx.Upstream.Login(ctx, credentials)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginResultFailure).Inc()
		return nil, err
	}

	user.LoggedInAt = time.Now().UTC()

	if err := a.commit(ctx, user); err != nil {
		return nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginResultSuccess).Inc()
	return user, nil
}

// CompleteSSO finishes an OIDC login: the provider validates the callback and
// exchanges the identity token upstream, then the resulting record is
// committed like any credential login.
func (a *Authenticator) CompleteSSO(ctx *middlewares.AppContext) (*models.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	user, err := ctx.OIDCProvider.HandleCallback(ctx)
	if err != nil {
		return nil, err
	}

	user.LoggedInAt = time.Now().UTC()

	if err := a.commit(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Logout invalidates the upstream session best-effort and then unconditionally
// clears the local one. The user's intent to log out is always honored
// locally; a remote failure is logged, not returned.
func (a *Authenticator) Logout(ctx *middlewares.AppContext) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if user, ok := ctx.SessionManager.CurrentUser(ctx); ok {
		if err := ctx.Upstream.Logout(upstream.ContextWithUser(ctx, user)); err != nil {
			a.logger.Warn("upstream logout failed, clearing local session anyway",
				"user_id", user.ID,
				"error", err,
			)
		}
	}

	if err := ctx.SessionManager.Destroy(ctx); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}

	return nil
}

// commit flips the session to authenticated. The token renewal and the record
// write both happen before control returns to the caller, so the in-memory
// view and the persisted copy can never be observed disagreeing.
func (a *Authenticator) commit(ctx *middlewares.AppContext, user *models.User) error {
	if err := ctx.SessionManager.RenewToken(ctx); err != nil {
		return fmt.Errorf("failed to renew session token: %w", err)
	}

	ctx.SessionManager.SetUser(ctx, user)
	return nil
}
