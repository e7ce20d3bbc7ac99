package middlewares

import (
	"net/url"
	"strings"
)

const (
	// LoginRoute is where anonymous visitors of protected pages are sent.
	LoginRoute = "/login"
	// RedirectQueryParam carries the originally requested location through
	// the login flow so it can be resumed after authentication.
	RedirectQueryParam = "redirect"
)

type GuardAction int

const (
	GuardProceed GuardAction = iota
	GuardRedirect
)

// GuardDecision is the outcome of the route guard: either let the navigation
// through or send the visitor to Location.
type GuardDecision struct {
	Action   GuardAction
	Location string
}

// DecideGuard is the route-guard decision function. It is pure: the navigation
// host (RequirePageAuth) performs the actual interruption. Anonymous visitors
// are redirected to the login route with the original destination recorded in
// the redirect parameter.
func DecideGuard(authenticated bool, target *url.URL) GuardDecision {
	if authenticated {
		return GuardDecision{Action: GuardProceed}
	}

	params := url.Values{}
	params.Set(RedirectQueryParam, target.RequestURI())

	return GuardDecision{
		Action:   GuardRedirect,
		Location: LoginRoute + "?" + params.Encode(),
	}
}

// SafeRedirectTarget sanitizes a post-login redirect target. Only local
// absolute paths are honored; anything else falls back to the root so the
// login flow cannot be abused as an open redirect.
func SafeRedirectTarget(target string) string {
	if target == "" {
		return "/"
	}

	parsed, err := url.Parse(target)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" {
		return "/"
	}

	if !strings.HasPrefix(parsed.Path, "/") || strings.HasPrefix(parsed.Path, "//") {
		return "/"
	}

	return parsed.RequestURI()
}
