package handlers

import (
	"net/http"

	"testdeck/internal/middlewares"
)

func POSTLogoutHandler(ctx *middlewares.AppContext) {
	user, _ := ctx.SessionManager.CurrentUser(ctx)

	if err := ctx.Authenticator.Logout(ctx); err != nil {
		ctx.Logger.Error("failed to logout user", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to logout")
		return
	}

	if user != nil {
		ctx.Logger.Info("user logged out", "user_id", user.ID)
	}

	ctx.SetJSONStatus(http.StatusOK, "OK")
}
