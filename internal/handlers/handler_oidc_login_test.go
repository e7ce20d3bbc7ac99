package handlers

import (
	"net/http"
	"testing"

	"testdeck/internal/testutil"
)

func TestOIDCLoginHandler_ShouldReturn404WhenNotConfigured(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "GET", "/api/auth/sso/login", nil)
	defer tc.Finish()

	tc.AppContext.OIDCProvider = nil

	tc.CallHandler(GETOIDCLoginHandler)

	tc.AssertStatus(t, http.StatusNotFound)
	tc.AssertJSONField(t, "error", "SSO is not configured")
}

func TestOIDCLoginHandler_ShouldShortCircuitWhenAlreadyAuthenticated(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "GET", "/api/auth/sso/login", nil)
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(true)

	tc.CallHandler(GETOIDCLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONField(t, "status", "ok")
}

func TestOIDCLoginHandler_ShouldRecordRedirectAndStartLogin(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "GET", "/api/auth/sso/login?redirect=/projects/7", nil)
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false)
	tc.MockSession.EXPECT().SetRedirectAfterLogin(tc.AppContext, "/projects/7")
	tc.MockOIDC.EXPECT().StartLogin(tc.AppContext).Return("https://idp.example.com/authorize?state=abc", nil)

	tc.CallHandler(GETOIDCLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONField(t, "status", "redirect_required")
	tc.AssertJSONString(t, "redirect_url", "https://idp.example.com/authorize?state=abc")
}
