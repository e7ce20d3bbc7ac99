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

func TestChangePasswordHandler_ShouldRejectMissingFields(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "POST", "/api/auth/change-password", strings.NewReader(`{"current_password":"hunter2"}`))
	defer tc.Finish()

	tc.CallHandler(POSTChangePasswordHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONField(t, "error", "Current and new password are required")
}

func TestChangePasswordHandler_ShouldRejectUnchangedPassword(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "POST", "/api/auth/change-password", strings.NewReader(`{"current_password":"hunter2","new_password":"hunter2"}`))
	defer tc.Finish()

	tc.CallHandler(POSTChangePasswordHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONField(t, "error", "New password must differ from the current one")
}

func TestChangePasswordHandler_ShouldForwardToUpstream(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "POST", "/api/auth/change-password", strings.NewReader(`{"current_password":"hunter2","new_password":"correct horse"}`))
	defer tc.Finish()

	tc.AppContext.SetPrincipal(&models.User{ID: 42, Token: "tok"})

	tc.MockUpstream.EXPECT().
		ChangePassword(gomock.Any(), upstream.ChangePasswordRequest{CurrentPassword: "hunter2", NewPassword: "correct horse"}).
		Return(nil)

	tc.CallHandler(POSTChangePasswordHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONField(t, "status", "OK")
}

func TestChangePasswordHandler_ShouldSurfaceRejectedCurrentPassword(t *testing.T) {
	tc := testutil.NewTestContextWithRequest(t, "POST", "/api/auth/change-password", strings.NewReader(`{"current_password":"wrong","new_password":"correct horse"}`))
	defer tc.Finish()

	tc.AppContext.SetPrincipal(&models.User{ID: 42, Token: "tok"})

	tc.MockUpstream.EXPECT().
		ChangePassword(gomock.Any(), gomock.Any()).
		Return(&upstream.APIError{Operation: "auth_change_password", StatusCode: http.StatusForbidden, Message: "current password incorrect"})

	tc.CallHandler(POSTChangePasswordHandler)

	tc.AssertStatus(t, http.StatusForbidden)
	tc.AssertJSONField(t, "error", "current password incorrect")
}
