package middlewares

import (
	"testdeck/internal/models"
)

//go:generate mockgen -source=oidc_provider.go -destination=../mocks/oidc.go -package=mocks

// OIDCProvider drives the optional SSO login flow.
type OIDCProvider interface {
	// StartLogin stores the oauth request parameters in the session and
	// returns the authorization URL to send the browser to.
	StartLogin(ctx *AppContext) (string, error)
	// HandleCallback validates the provider response and returns the
	// authenticated identity.
	HandleCallback(ctx *AppContext) (*models.User, error)
}
