package handlers

import (
	"net/http"

	"testdeck/internal/middlewares"
)

// GETEnvironmentsHandler serves the environment catalog through the reference
// cache. Environments are public reference data, so the fetch carries no
// credentials and a single cached copy serves everyone.
func GETEnvironmentsHandler(ctx *middlewares.AppContext) {
	environments, err := ctx.Reference.Environments(ctx.Context)
	if err != nil {
		ctx.Logger.Error("failed to list environments", "error", err)
		writeUpstreamError(ctx, err, "Failed to load environments")
		return
	}

	ctx.WriteJSON(http.StatusOK, environments)
}
