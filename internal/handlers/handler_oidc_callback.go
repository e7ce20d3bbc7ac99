package handlers

import (
	"errors"
	"net/http"

	"testdeck/internal/auth"
	"testdeck/internal/middlewares"
)

// GETOIDCCallbackHandler completes an SSO login. The provider response is
// validated and exchanged through the authenticator, so SSO sessions commit
// exactly like credential logins.
func GETOIDCCallbackHandler(ctx *middlewares.AppContext) {
	if ctx.OIDCProvider == nil {
		ctx.SetJSONError(http.StatusNotFound, "SSO is not configured")
		return
	}

	user, err := ctx.Authenticator.CompleteSSO(ctx)
	if err != nil {
		ctx.Logger.Error("failed to handle OIDC callback", "error", err)

		var oidcErr *auth.OIDCError
		if errors.As(err, &oidcErr) {
			ctx.Redirect(oidcErr.RedirectURL, http.StatusFound)
			return
		}

		ctx.Redirect("/error?error=auth_failed", http.StatusFound)
		return
	}

	ctx.Logger.Info("user authenticated via SSO",
		"user_id", user.ID,
		"email", RedactEmail(user.Email),
	)

	redirectTo := middlewares.SafeRedirectTarget(ctx.SessionManager.ConsumeRedirectAfterLogin(ctx))
	ctx.Redirect(redirectTo, http.StatusFound)
}
