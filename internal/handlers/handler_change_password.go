package handlers

import (
	"encoding/json"
	"net/http"

	"testdeck/internal/middlewares"
	"testdeck/internal/upstream"
)

// POSTChangePasswordHandler forwards a password change for the authenticated
// user. The session stays valid; the upstream keeps the issued token alive
// across a password change.
func POSTChangePasswordHandler(ctx *middlewares.AppContext) {
	var request ChangePasswordRequest
	if err := json.NewDecoder(ctx.Request.Body).Decode(&request); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid request body")
		return
	}

	if request.CurrentPassword == "" || request.NewPassword == "" {
		ctx.SetJSONError(http.StatusBadRequest, "Current and new password are required")
		return
	}

	if request.CurrentPassword == request.NewPassword {
		ctx.SetJSONError(http.StatusBadRequest, "New password must differ from the current one")
		return
	}

	err := ctx.Upstream.ChangePassword(ctx.AuthedContext(), upstream.ChangePasswordRequest{
		CurrentPassword: request.CurrentPassword,
		NewPassword:     request.NewPassword,
	})
	if err != nil {
		ctx.Logger.Warn("password change failed", "user_id", ctx.GetPrincipal().ID, "error", err)
		writeUpstreamError(ctx, err, "Password change temporarily unavailable")
		return
	}

	ctx.Logger.Info("password changed", "user_id", ctx.GetPrincipal().ID)
	ctx.SetJSONStatus(http.StatusOK, "OK")
}
