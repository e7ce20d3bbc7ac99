package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"testdeck/internal/models"
	"testdeck/internal/testutil"
)

func TestLogoutHandler_ShouldDestroySession(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "POST", "/api/auth/logout", nil)
	defer tc.Finish()

	testUser := &models.User{ID: 42, Name: "steve"}

	tc.MockSession.EXPECT().CurrentUser(tc.AppContext).Return(testUser, true)
	tc.MockAuth.EXPECT().Logout(tc.AppContext).Return(nil)

	tc.CallHandler(POSTLogoutHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONField(t, "status", "OK")
}

func TestLogoutHandler_ShouldSucceedForAnonymousSession(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "POST", "/api/auth/logout", nil)
	defer tc.Finish()

	tc.MockSession.EXPECT().CurrentUser(tc.AppContext).Return(nil, false)
	tc.MockAuth.EXPECT().Logout(tc.AppContext).Return(nil)

	tc.CallHandler(POSTLogoutHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONField(t, "status", "OK")
}

func TestLogoutHandler_ShouldReturn500WhenSessionCannotBeDestroyed(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "POST", "/api/auth/logout", nil)
	defer tc.Finish()

	tc.MockSession.EXPECT().CurrentUser(tc.AppContext).Return(&models.User{ID: 42}, true)
	tc.MockAuth.EXPECT().Logout(tc.AppContext).Return(errors.New("session store unavailable"))

	tc.CallHandler(POSTLogoutHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
	tc.AssertJSONField(t, "error", "Failed to logout")
	tc.AssertLogContains(t, slog.LevelError, "failed to logout user")
}
