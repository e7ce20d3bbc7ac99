package upstream

import (
	"net/http"
	"time"
)

// operation is one entry of the fixed upstream catalog: a method, a path
// template and a name used for logging and metrics. All calls the client can
// make are listed here; service wrappers never build paths themselves.
type operation struct {
	Name   string
	Method string
	Path   string
}

var (
	opLogin          = operation{"auth_login", http.MethodPost, "/api/auth/login"}
	opLogout         = operation{"auth_logout", http.MethodPost, "/api/auth/logout"}
	opSSOLogin       = operation{"auth_sso", http.MethodPost, "/api/auth/sso"}
	opChangePassword = operation{"auth_change_password", http.MethodPost, "/api/auth/change-password"}

	opListProjects     = operation{"list_projects", http.MethodGet, "/api/projects"}
	opCreateProject    = operation{"create_project", http.MethodPost, "/api/projects"}
	opListTestCases    = operation{"list_test_cases", http.MethodGet, "/api/projects/%d/test-cases"}
	opCreateTestCase   = operation{"create_test_case", http.MethodPost, "/api/projects/%d/test-cases"}
	opListTestPlans    = operation{"list_test_plans", http.MethodGet, "/api/projects/%d/test-plans"}
	opCreateTestPlan   = operation{"create_test_plan", http.MethodPost, "/api/projects/%d/test-plans"}
	opListTestRuns     = operation{"list_test_runs", http.MethodGet, "/api/projects/%d/test-runs"}
	opCreateTestRun    = operation{"create_test_run", http.MethodPost, "/api/projects/%d/test-runs"}
	opListEnvironments = operation{"list_environments", http.MethodGet, "/api/environments"}
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SSOLoginRequest exchanges a verified OIDC identity token for an upstream
// session. The upstream issues the API token either way, so SSO sessions obey
// the same invariants as credential sessions.
type SSOLoginRequest struct {
	IDToken string `json:"id_token"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type Project struct {
	ID          int64     `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

type ProjectCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type TestCase struct {
	ID             int64  `json:"case_id"`
	ProjectID      int64  `json:"project_id"`
	Title          string `json:"title"`
	Preconditions  string `json:"preconditions,omitempty"`
	Steps          string `json:"steps,omitempty"`
	ExpectedResult string `json:"expected_result,omitempty"`
	Priority       string `json:"priority,omitempty"`
}

type TestCaseCreate struct {
	Title          string `json:"title"`
	Preconditions  string `json:"preconditions,omitempty"`
	Steps          string `json:"steps,omitempty"`
	ExpectedResult string `json:"expected_result,omitempty"`
	Priority       string `json:"priority,omitempty"`
}

type TestPlan struct {
	ID          int64   `json:"plan_id"`
	ProjectID   int64   `json:"project_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	CaseIDs     []int64 `json:"case_ids,omitempty"`
}

type TestPlanCreate struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	CaseIDs     []int64 `json:"case_ids,omitempty"`
}

type TestRun struct {
	ID            int64      `json:"run_id"`
	ProjectID     int64      `json:"project_id"`
	PlanID        int64      `json:"plan_id,omitempty"`
	EnvironmentID int64      `json:"environment_id,omitempty"`
	Name          string     `json:"name"`
	Status        string     `json:"status"`
	StartedAt     time.Time  `json:"started_at,omitzero"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

type TestRunCreate struct {
	PlanID        int64  `json:"plan_id,omitempty"`
	EnvironmentID int64  `json:"environment_id,omitempty"`
	Name          string `json:"name"`
}

type Environment struct {
	ID          int64  `json:"environment_id"`
	Name        string `json:"name"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}
