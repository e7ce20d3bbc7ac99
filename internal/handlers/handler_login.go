package handlers

import (
	"encoding/json"
	"net/http"

	"testdeck/internal/middlewares"
	"testdeck/internal/upstream"
)

// POSTLoginHandler exchanges credentials for a session. On success the session
// is authenticated before the response is written, so the very next request
// already sees the logged-in state.
func POSTLoginHandler(ctx *middlewares.AppContext) {
	var request LoginRequest
	if err := json.NewDecoder(ctx.Request.Body).Decode(&request); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid request body")
		return
	}

	if request.Email == "" || request.Password == "" {
		ctx.SetJSONError(http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := ctx.Authenticator.Login(ctx, upstream.LoginRequest{
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		if upstream.IsUnauthorized(err) {
			ctx.Logger.Info("login rejected", "email", RedactEmail(request.Email))
			ctx.SetJSONError(http.StatusUnauthorized, "Invalid email or password")
			return
		}

		ctx.Logger.Error("login failed", "email", RedactEmail(request.Email), "error", err)
		writeUpstreamError(ctx, err, "Login temporarily unavailable")
		return
	}

	ctx.Logger.Info("user logged in", "user_id", user.ID, "email", RedactEmail(user.Email))

	redirectTo := ctx.Request.URL.Query().Get(middlewares.RedirectQueryParam)
	if redirectTo == "" {
		redirectTo = ctx.SessionManager.ConsumeRedirectAfterLogin(ctx)
	}
	if redirectTo != "" {
		redirectTo = middlewares.SafeRedirectTarget(redirectTo)
	}

	ctx.WriteJSON(http.StatusOK, LoginResponse{
		User:       user,
		RedirectTo: redirectTo,
	})
}
