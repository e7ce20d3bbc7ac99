package handlers

import (
	"net/http"
	"testing"

	"testdeck/internal/auth"
	"testdeck/internal/models"
	"testdeck/internal/testutil"
)

func TestOIDCCallbackHandler_ShouldRedirectToConsumedTarget(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "GET", "/api/auth/sso/callback?code=abc&state=xyz", nil)
	defer tc.Finish()

	testUser := &models.User{ID: 42, Email: "steve@example.com"}

	tc.MockAuth.EXPECT().CompleteSSO(tc.AppContext).Return(testUser, nil)
	tc.MockSession.EXPECT().ConsumeRedirectAfterLogin(tc.AppContext).Return("/projects/7")

	tc.CallHandler(GETOIDCCallbackHandler)

	tc.AssertStatus(t, http.StatusFound)
	if location := tc.Response.Header().Get("Location"); location != "/projects/7" {
		t.Errorf("Expected redirect to /projects/7, got %s", location)
	}
}

func TestOIDCCallbackHandler_ShouldFallBackToRootWithoutTarget(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "GET", "/api/auth/sso/callback?code=abc&state=xyz", nil)
	defer tc.Finish()

	tc.MockAuth.EXPECT().CompleteSSO(tc.AppContext).Return(&models.User{ID: 42}, nil)
	tc.MockSession.EXPECT().ConsumeRedirectAfterLogin(tc.AppContext).Return("")

	tc.CallHandler(GETOIDCCallbackHandler)

	tc.AssertStatus(t, http.StatusFound)
	if location := tc.Response.Header().Get("Location"); location != "/" {
		t.Errorf("Expected redirect to /, got %s", location)
	}
}

func TestOIDCCallbackHandler_ShouldRedirectToProviderErrorPage(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "GET", "/api/auth/sso/callback?error=access_denied", nil)
	defer tc.Finish()

	tc.MockAuth.EXPECT().CompleteSSO(tc.AppContext).Return(nil, &auth.OIDCError{
		RedirectURL: "/error?error=access_denied",
		Message:     "access_denied",
	})

	tc.CallHandler(GETOIDCCallbackHandler)

	tc.AssertStatus(t, http.StatusFound)
	if location := tc.Response.Header().Get("Location"); location != "/error?error=access_denied" {
		t.Errorf("Expected redirect to error page, got %s", location)
	}
}
