package handlers

import (
	"encoding/json"
	"net/http"

	"testdeck/internal/middlewares"
	"testdeck/internal/upstream"
)

func GETTestPlansHandler(ctx *middlewares.AppContext) {
	projectID, ok := projectIDParam(ctx)
	if !ok {
		return
	}

	plans, err := ctx.Upstream.ListTestPlans(ctx.AuthedContext(), projectID)
	if err != nil {
		ctx.Logger.Error("failed to list test plans", "project_id", projectID, "error", err)
		writeUpstreamError(ctx, err, "Failed to load test plans")
		return
	}

	ctx.WriteJSON(http.StatusOK, plans)
}

func POSTTestPlanHandler(ctx *middlewares.AppContext) {
	projectID, ok := projectIDParam(ctx)
	if !ok {
		return
	}

	var request upstream.TestPlanCreate
	if err := json.NewDecoder(ctx.Request.Body).Decode(&request); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid request body")
		return
	}

	if request.Name == "" {
		ctx.SetJSONError(http.StatusBadRequest, "Test plan name is required")
		return
	}

	plan, err := ctx.Upstream.CreateTestPlan(ctx.AuthedContext(), projectID, request)
	if err != nil {
		ctx.Logger.Error("failed to create test plan", "project_id", projectID, "error", err)
		writeUpstreamError(ctx, err, "Failed to create test plan")
		return
	}

	ctx.WriteJSON(http.StatusCreated, plan)
}
