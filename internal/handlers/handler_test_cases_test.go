package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"testdeck/internal/models"
	"testdeck/internal/testutil"
	"testdeck/internal/upstream"
)

func withProjectID(tc *testutil.TestContext, id string) {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("projectID", id)

	tc.Request = tc.Request.WithContext(context.WithValue(tc.Request.Context(), chi.RouteCtxKey, rctx))
	tc.AppContext.Request = tc.Request
}

func TestTestCasesHandler_ShouldRejectBadProjectID(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "GET", "/api/projects/abc/test-cases", nil)
	defer tc.Finish()
	withProjectID(tc, "abc")

	tc.CallHandler(GETTestCasesHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONField(t, "error", "Invalid project id")
}

func TestTestCasesHandler_ShouldListCasesForProject(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "GET", "/api/projects/7/test-cases", nil)
	defer tc.Finish()
	withProjectID(tc, "7")

	tc.AppContext.SetPrincipal(&models.User{ID: 42, Token: "tok"})

	tc.MockUpstream.EXPECT().
		ListTestCases(gomock.Any(), int64(7)).
		Return([]upstream.TestCase{
			{ID: 100, ProjectID: 7, Title: "login works"},
		}, nil)

	tc.CallHandler(GETTestCasesHandler)

	tc.AssertStatus(t, http.StatusOK)

	cases := tc.GetJSONResponseArray(t)
	if len(cases) != 1 {
		t.Fatalf("Expected 1 test case, got %d", len(cases))
	}
}

func TestTestCasesHandler_ShouldRequireTitle(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "POST", "/api/projects/7/test-cases", strings.NewReader(`{"steps":"do things"}`))
	defer tc.Finish()
	withProjectID(tc, "7")

	tc.CallHandler(POSTTestCaseHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONField(t, "error", "Test case title is required")
}

func TestTestCasesHandler_ShouldCreateCase(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "POST", "/api/projects/7/test-cases", strings.NewReader(`{"title":"login works","priority":"high"}`))
	defer tc.Finish()
	withProjectID(tc, "7")

	tc.AppContext.SetPrincipal(&models.User{ID: 42, Token: "tok"})

	tc.MockUpstream.EXPECT().
		CreateTestCase(gomock.Any(), int64(7), upstream.TestCaseCreate{Title: "login works", Priority: "high"}).
		Return(&upstream.TestCase{ID: 100, ProjectID: 7, Title: "login works", Priority: "high"}, nil)

	tc.CallHandler(POSTTestCaseHandler)

	tc.AssertStatus(t, http.StatusCreated)

	response := tc.GetJSONResponse(t)
	if response["case_id"] != float64(100) {
		t.Errorf("Expected case_id 100, got %v", response["case_id"])
	}
}
