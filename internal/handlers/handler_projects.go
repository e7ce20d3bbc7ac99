package handlers

import (
	"encoding/json"
	"net/http"

	"testdeck/internal/middlewares"
	"testdeck/internal/upstream"
)

func GETProjectsHandler(ctx *middlewares.AppContext) {
	projects, err := ctx.Upstream.ListProjects(ctx.AuthedContext())
	if err != nil {
		ctx.Logger.Error("failed to list projects", "error", err)
		writeUpstreamError(ctx, err, "Failed to load projects")
		return
	}

	ctx.WriteJSON(http.StatusOK, projects)
}

func POSTProjectHandler(ctx *middlewares.AppContext) {
	var request upstream.ProjectCreate
	if err := json.NewDecoder(ctx.Request.Body).Decode(&request); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid request body")
		return
	}

	if request.Name == "" {
		ctx.SetJSONError(http.StatusBadRequest, "Project name is required")
		return
	}

	project, err := ctx.Upstream.CreateProject(ctx.AuthedContext(), request)
	if err != nil {
		ctx.Logger.Error("failed to create project", "name", request.Name, "error", err)
		writeUpstreamError(ctx, err, "Failed to create project")
		return
	}

	ctx.Logger.Info("project created", "project_id", project.ID, "user_id", ctx.GetPrincipal().ID)
	ctx.WriteJSON(http.StatusCreated, project)
}
