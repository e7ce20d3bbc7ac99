package handlers

import (
	"encoding/json"
	"net/http"

	"testdeck/internal/middlewares"
	"testdeck/internal/upstream"
)

func GETTestRunsHandler(ctx *middlewares.AppContext) {
	projectID, ok := projectIDParam(ctx)
	if !ok {
		return
	}

	runs, err := ctx.Upstream.ListTestRuns(ctx.AuthedContext(), projectID)
	if err != nil {
		ctx.Logger.Error("failed to list test runs", "project_id", projectID, "error", err)
		writeUpstreamError(ctx, err, "Failed to load test runs")
		return
	}

	ctx.WriteJSON(http.StatusOK, runs)
}

func POSTTestRunHandler(ctx *middlewares.AppContext) {
	projectID, ok := projectIDParam(ctx)
	if !ok {
		return
	}

	var request upstream.TestRunCreate
	if err := json.NewDecoder(ctx.Request.Body).Decode(&request); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid request body")
		return
	}

	if request.Name == "" {
		ctx.SetJSONError(http.StatusBadRequest, "Test run name is required")
		return
	}

	run, err := ctx.Upstream.CreateTestRun(ctx.AuthedContext(), projectID, request)
	if err != nil {
		ctx.Logger.Error("failed to create test run", "project_id", projectID, "error", err)
		writeUpstreamError(ctx, err, "Failed to create test run")
		return
	}

	ctx.WriteJSON(http.StatusCreated, run)
}
