package handlers

import (
	"encoding/json"
	"net/http"

	"testdeck/internal/middlewares"
	"testdeck/internal/upstream"
)

func GETTestCasesHandler(ctx *middlewares.AppContext) {
	projectID, ok := projectIDParam(ctx)
	if !ok {
		return
	}

	cases, err := ctx.Upstream.ListTestCases(ctx.AuthedContext(), projectID)
	if err != nil {
		ctx.Logger.Error("failed to list test cases", "project_id", projectID, "error", err)
		writeUpstreamError(ctx, err, "Failed to load test cases")
		return
	}

	ctx.WriteJSON(http.StatusOK, cases)
}

func POSTTestCaseHandler(ctx *middlewares.AppContext) {
	projectID, ok := projectIDParam(ctx)
	if !ok {
		return
	}

	var request upstream.TestCaseCreate
	if err := json.NewDecoder(ctx.Request.Body).Decode(&request); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid request body")
		return
	}

	if request.Title == "" {
		ctx.SetJSONError(http.StatusBadRequest, "Test case title is required")
		return
	}

	testCase, err := ctx.Upstream.CreateTestCase(ctx.AuthedContext(), projectID, request)
	if err != nil {
		ctx.Logger.Error("failed to create test case", "project_id", projectID, "error", err)
		writeUpstreamError(ctx, err, "Failed to create test case")
		return
	}

	ctx.WriteJSON(http.StatusCreated, testCase)
}
