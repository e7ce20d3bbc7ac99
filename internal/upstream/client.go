package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"testdeck/internal/config"
	"testdeck/internal/metrics"
	"testdeck/internal/models"
)

const maxErrorBodySize = 64 * 1024

// Client is the single shared client for the upstream test-management API.
// The base endpoint is resolved once from config at construction and is fixed
// for the client's lifetime; the credential-injecting transport is the one
// chokepoint every operation passes through.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger *slog.Logger
}

func New(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(cfg.Upstream.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream url: %w", err)
	}

	httpClient := &http.Client{
		Timeout: time.Duration(cfg.Upstream.Timeout),
		Transport: &Transport{
			Editors: []RequestEditor{CredentialEditor, RequestIDEditor},
		},
	}

	return &Client{
		base:   base,
		http:   httpClient,
		logger: logger,
	}, nil
}

// BaseURL returns the endpoint the client was constructed with.
func (c *Client) BaseURL() string {
	return c.base.String()
}

func (c *Client) do(ctx context.Context, op operation, body any, out any, pathArgs ...any) error {
	path := op.Path
	if len(pathArgs) > 0 {
		path = fmt.Sprintf(op.Path, pathArgs...)
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", op.Name, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, op.Method, c.base.JoinPath(path).String(), reqBody)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", op.Name, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(op.Name, "error").Inc()
		return fmt.Errorf("%s request failed: %w", op.Name, err)
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestDuration.WithLabelValues(op.Name).Observe(time.Since(start).Seconds())
	metrics.UpstreamRequestsTotal.WithLabelValues(op.Name, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		c.logger.Debug("upstream request failed",
			"operation", op.Name,
			"status", resp.StatusCode,
		)
		return &APIError{
			Operation:  op.Name,
			StatusCode: resp.StatusCode,
			Body:       raw,
			Message:    parseErrorMessage(raw),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", op.Name, err)
	}

	return nil
}

// Login exchanges credentials for the authenticated identity record. The
// caller owns persisting the returned session.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, opLogin, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SSOLogin exchanges a verified OIDC identity token for an upstream session.
func (c *Client) SSOLogin(ctx context.Context, req SSOLoginRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, opSSOLogin, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout invalidates the upstream session for the identity carried in ctx.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, opLogout, nil, nil)
}

func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return c.do(ctx, opChangePassword, req, nil)
}

func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, opListProjects, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) CreateProject(ctx context.Context, req ProjectCreate) (*Project, error) {
	var project Project
	if err := c.do(ctx, opCreateProject, req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) ListTestCases(ctx context.Context, projectID int64) ([]TestCase, error) {
	var cases []TestCase
	if err := c.do(ctx, opListTestCases, nil, &cases, projectID); err != nil {
		return nil, err
	}
	return cases, nil
}

func (c *Client) CreateTestCase(ctx context.Context, projectID int64, req TestCaseCreate) (*TestCase, error) {
	var testCase TestCase
	if err := c.do(ctx, opCreateTestCase, req, &testCase, projectID); err != nil {
		return nil, err
	}
	return &testCase, nil
}

func (c *Client) ListTestPlans(ctx context.Context, projectID int64) ([]TestPlan, error) {
	var plans []TestPlan
	if err := c.do(ctx, opListTestPlans, nil, &plans, projectID); err != nil {
		return nil, err
	}
	return plans, nil
}

func (c *Client) CreateTestPlan(ctx context.Context, projectID int64, req TestPlanCreate) (*TestPlan, error) {
	var plan TestPlan
	if err := c.do(ctx, opCreateTestPlan, req, &plan, projectID); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *Client) ListTestRuns(ctx context.Context, projectID int64) ([]TestRun, error) {
	var runs []TestRun
	if err := c.do(ctx, opListTestRuns, nil, &runs, projectID); err != nil {
		return nil, err
	}
	return runs, nil
}

func (c *Client) CreateTestRun(ctx context.Context, projectID int64, req TestRunCreate) (*TestRun, error) {
	var run TestRun
	if err := c.do(ctx, opCreateTestRun, req, &run, projectID); err != nil {
		return nil, err
	}
	return &run, nil
}

func (c *Client) ListEnvironments(ctx context.Context) ([]Environment, error) {
	var environments []Environment
	if err := c.do(ctx, opListEnvironments, nil, &environments); err != nil {
		return nil, err
	}
	return environments, nil
}
