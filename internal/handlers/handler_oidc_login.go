package handlers

import (
	"net/http"
	"strings"

	"testdeck/internal/middlewares"
)

func GETOIDCLoginHandler(ctx *middlewares.AppContext) {
	if ctx.OIDCProvider == nil {
		ctx.SetJSONError(http.StatusNotFound, "SSO is not configured")
		return
	}

	if ctx.SessionManager.IsAuthenticated(ctx) {
		ctx.Logger.Debug("user already authenticated")
		ctx.SetJSONStatus(http.StatusOK, "ok")
		return
	}

	redirectTo := ctx.Request.URL.Query().Get(middlewares.RedirectQueryParam)
	if redirectTo == "" {
		redirectTo = ctx.Request.Header.Get("Referer")
		if redirectTo == "" {
			redirectTo = "/"
		}
	}

	if strings.Contains(redirectTo, "/error") {
		ctx.Logger.Debug("referer is error page, redirecting to root instead", "original_referer", redirectTo)
		redirectTo = "/"
	}

	ctx.SessionManager.SetRedirectAfterLogin(ctx, redirectTo)

	authURL, err := ctx.OIDCProvider.StartLogin(ctx)
	if err != nil {
		ctx.Logger.Error("failed to start SSO login", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Logger.Debug("redirecting to OIDC provider", "url", authURL)

	ctx.WriteJSON(http.StatusOK, map[string]string{
		"status":       "redirect_required",
		"redirect_url": authURL,
	})
}
