package upstream

import (
	"net/http"

	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-Id"

// RequestEditor is a single middleware stage: it annotates an outbound request
// before transmission. Editors must not perform network I/O.
type RequestEditor func(req *http.Request) error

// Transport runs the editor pipeline exactly once per outbound request and
// then delegates to the proxied round tripper. It is registered on the shared
// client at construction, so every operation goes through the same pipeline.
type Transport struct {
	Editors []RequestEditor
	Proxied http.RoundTripper
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request.
	out := req.Clone(req.Context())

	for _, edit := range t.Editors {
		if err := edit(out); err != nil {
			return nil, err
		}
	}

	proxied := t.Proxied
	if proxied == nil {
		proxied = http.DefaultTransport
	}

	return proxied.RoundTrip(out)
}

// CredentialEditor injects the credential headers derived from the session
// identity carried in the request context. Headers already set by the caller
// win; the editor only fills what is absent, which also makes it idempotent.
// A request without a session identity passes through untouched.
func CredentialEditor(req *http.Request) error {
	user, ok := UserFromContext(req.Context())
	if !ok {
		return nil
	}

	for name, value := range CredentialHeaders(user) {
		if req.Header.Get(name) != "" {
			continue
		}
		req.Header.Set(name, value)
	}

	return nil
}

// RequestIDEditor tags every upstream request with a correlation id.
func RequestIDEditor(req *http.Request) error {
	if req.Header.Get(HeaderRequestID) == "" {
		req.Header.Set(HeaderRequestID, uuid.NewString())
	}
	return nil
}
