package middlewares

import (
	"testdeck/internal/models"
	"testdeck/internal/upstream"
)

//go:generate mockgen -source=auth_provider.go -destination=../mocks/auth.go -package=mocks

// AuthProvider owns the session state machine. All transitions between
// anonymous and authenticated go through these two calls.
type AuthProvider interface {
	Login(ctx *AppContext, credentials upstream.LoginRequest) (*models.User, error)
	CompleteSSO(ctx *AppContext) (*models.User, error)
	Logout(ctx *AppContext) error
}
