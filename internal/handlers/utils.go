package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"testdeck/internal/middlewares"
	"testdeck/internal/upstream"
)

// RedactEmail is used to redact emails (mostly for logs)
func RedactEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return ""
	}

	localRunes := []rune(parts[0])
	domain := parts[1]

	if len(localRunes) <= 2 {
		return strings.Repeat("*", len(localRunes)) + "@" + domain
	}

	first := string(localRunes[0])
	last := string(localRunes[len(localRunes)-1])
	middle := strings.Repeat("*", len(localRunes)-2)

	return first + middle + last + "@" + domain
}

// writeUpstreamError surfaces an upstream failure to the client. API errors
// keep their status and message; anything else becomes a 502 with the
// fallback message.
func writeUpstreamError(ctx *middlewares.AppContext, err error, fallback string) {
	if apiErr, ok := upstream.AsAPIError(err); ok {
		message := apiErr.Message
		if message == "" {
			message = http.StatusText(apiErr.StatusCode)
		}
		ctx.SetJSONError(apiErr.StatusCode, message)
		return
	}

	ctx.SetJSONError(http.StatusBadGateway, fallback)
}

// projectIDParam parses the projectID route parameter. On failure it writes
// the 400 itself and the handler just returns.
func projectIDParam(ctx *middlewares.AppContext) (int64, bool) {
	raw := chi.URLParam(ctx.Request, "projectID")

	projectID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || projectID <= 0 {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid project id")
		return 0, false
	}

	return projectID, true
}
