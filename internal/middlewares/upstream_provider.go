package middlewares

import (
	"context"

	"testdeck/internal/models"
	"testdeck/internal/upstream"
)

//go:generate mockgen -source=upstream_provider.go -destination=../mocks/upstream.go -package=mocks

// UpstreamProvider is the typed operation catalog of the upstream
// test-management API, implemented by *upstream.Client.
type UpstreamProvider interface {
	Login(ctx context.Context, req upstream.LoginRequest) (*models.User, error)
	SSOLogin(ctx context.Context, req upstream.SSOLoginRequest) (*models.User, error)
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context, req upstream.ChangePasswordRequest) error

	ListProjects(ctx context.Context) ([]upstream.Project, error)
	CreateProject(ctx context.Context, req upstream.ProjectCreate) (*upstream.Project, error)
	ListTestCases(ctx context.Context, projectID int64) ([]upstream.TestCase, error)
	CreateTestCase(ctx context.Context, projectID int64, req upstream.TestCaseCreate) (*upstream.TestCase, error)
	ListTestPlans(ctx context.Context, projectID int64) ([]upstream.TestPlan, error)
	CreateTestPlan(ctx context.Context, projectID int64, req upstream.TestPlanCreate) (*upstream.TestPlan, error)
	ListTestRuns(ctx context.Context, projectID int64) ([]upstream.TestRun, error)
	CreateTestRun(ctx context.Context, projectID int64, req upstream.TestRunCreate) (*upstream.TestRun, error)
	ListEnvironments(ctx context.Context) ([]upstream.Environment, error)
}
