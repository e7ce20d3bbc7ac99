package handlers

import (
	"net/http"

	"testdeck/internal/middlewares"
)

func AuthStatusHandler(ctx *middlewares.AppContext) {
	response := AuthStatusResponse{
		Authenticated: false,
	}

	if user, ok := ctx.SessionManager.CurrentUser(ctx); ok {
		response.Authenticated = true
		response.User = user
		ctx.WriteJSON(http.StatusOK, response)
		return
	}

	ctx.WriteJSON(http.StatusUnauthorized, response)
}
