package handlers

import (
	"net/http"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"testdeck/internal/models"
	"testdeck/internal/testutil"
	"testdeck/internal/upstream"
)

func TestProjectsHandler_ShouldListProjects(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "GET", "/api/projects", nil)
	defer tc.Finish()

	tc.AppContext.SetPrincipal(&models.User{ID: 42, Token: "tok"})

	tc.MockUpstream.EXPECT().
		ListProjects(gomock.Any()).
		Return([]upstream.Project{
			{ID: 1, Name: "checkout"},
			{ID: 2, Name: "billing"},
		}, nil)

	tc.CallHandler(GETProjectsHandler)

	tc.AssertStatus(t, http.StatusOK)

	projects := tc.GetJSONResponseArray(t)
	if len(projects) != 2 {
		t.Fatalf("Expected 2 projects, got %d", len(projects))
	}
}

func TestProjectsHandler_ShouldSurfaceUpstream401(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "GET", "/api/projects", nil)
	defer tc.Finish()

	tc.AppContext.SetPrincipal(&models.User{ID: 42, Token: "expired"})

	tc.MockUpstream.EXPECT().
		ListProjects(gomock.Any()).
		Return(nil, &upstream.APIError{Operation: "list_projects", StatusCode: http.StatusUnauthorized})

	tc.CallHandler(GETProjectsHandler)

	// Stale upstream credentials surface as the operation's failure; the local
	// session is not torn down here.
	tc.AssertStatus(t, http.StatusUnauthorized)
}

func TestProjectsHandler_ShouldRejectUnnamedProject(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "POST", "/api/projects", strings.NewReader(`{"description":"no name"}`))
	defer tc.Finish()

	tc.CallHandler(POSTProjectHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONField(t, "error", "Project name is required")
}

func TestProjectsHandler_ShouldCreateProject(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "POST", "/api/projects", strings.NewReader(`{"name":"checkout"}`))
	defer tc.Finish()

	tc.AppContext.SetPrincipal(&models.User{ID: 42, Token: "tok"})

	tc.MockUpstream.EXPECT().
		CreateProject(gomock.Any(), upstream.ProjectCreate{Name: "checkout"}).
		Return(&upstream.Project{ID: 7, Name: "checkout"}, nil)

	tc.CallHandler(POSTProjectHandler)

	tc.AssertStatus(t, http.StatusCreated)

	response := tc.GetJSONResponse(t)
	if response["project_id"] != float64(7) {
		t.Errorf("Expected project_id 7, got %v", response["project_id"])
	}
}
