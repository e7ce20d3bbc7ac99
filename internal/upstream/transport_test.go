package upstream

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testdeck/internal/models"
)

type captureRoundTripper struct {
	req *http.Request
}

func (c *captureRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	c.req = req
	rec := httptest.NewRecorder()
	rec.WriteHeader(http.StatusOK)
	return rec.Result(), nil
}

func newCapturingClient() (*http.Client, *captureRoundTripper) {
	capture := &captureRoundTripper{}
	client := &http.Client{
		Transport: &Transport{
			Editors: []RequestEditor{CredentialEditor, RequestIDEditor},
			Proxied: capture,
		},
	}
	return client, capture
}

func TestTransport_InjectsSessionCredentials(t *testing.T) {
	client, capture := newCapturingClient()

	ctx := ContextWithUser(t.Context(), &models.User{ID: 42, Token: "abc123"})
	req, err := http.NewRequestWithContext(ctx, "GET", "http://upstream.local/api/projects", nil)
	require.NoError(t, err)

	_, err = client.Do(req)
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc123", capture.req.Header.Get("Authorization"))
}

func TestTransport_AnonymousRequestPassesThroughUntouched(t *testing.T) {
	client, capture := newCapturingClient()

	req, err := http.NewRequestWithContext(t.Context(), "GET", "http://upstream.local/api/environments", nil)
	require.NoError(t, err)

	_, err = client.Do(req)
	require.NoError(t, err)

	assert.Empty(t, capture.req.Header.Get("Authorization"))
}

func TestTransport_CallerProvidedAuthorizationWins(t *testing.T) {
	client, capture := newCapturingClient()

	ctx := ContextWithUser(t.Context(), &models.User{ID: 42, Token: "session-token"})
	req, err := http.NewRequestWithContext(ctx, "GET", "http://upstream.local/api/projects", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer caller-token")

	_, err = client.Do(req)
	require.NoError(t, err)

	assert.Equal(t, "Bearer caller-token", capture.req.Header.Get("Authorization"))
}

func TestTransport_EditorPipelineIsIdempotent(t *testing.T) {
	ctx := ContextWithUser(t.Context(), &models.User{ID: 42, Token: "abc123"})
	req, err := http.NewRequestWithContext(ctx, "GET", "http://upstream.local/api/projects", nil)
	require.NoError(t, err)

	// Applying the editors twice over must not change the outcome.
	require.NoError(t, CredentialEditor(req))
	require.NoError(t, CredentialEditor(req))

	assert.Equal(t, []string{"Bearer abc123"}, req.Header.Values("Authorization"))
}

func TestTransport_DoesNotMutateCallerRequest(t *testing.T) {
	client, capture := newCapturingClient()

	ctx := ContextWithUser(t.Context(), &models.User{ID: 42, Token: "abc123"})
	req, err := http.NewRequestWithContext(ctx, "GET", "http://upstream.local/api/projects", nil)
	require.NoError(t, err)

	_, err = client.Do(req)
	require.NoError(t, err)

	assert.Empty(t, req.Header.Get("Authorization"))
	assert.NotSame(t, req, capture.req)
}

func TestTransport_TagsRequestsWithCorrelationID(t *testing.T) {
	client, capture := newCapturingClient()

	req, err := http.NewRequestWithContext(t.Context(), "GET", "http://upstream.local/api/projects", nil)
	require.NoError(t, err)

	_, err = client.Do(req)
	require.NoError(t, err)

	assert.NotEmpty(t, capture.req.Header.Get(HeaderRequestID))
}
