package handlers

import (
	"testdeck/internal/models"
)

type AuthStatusResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse returns the established identity plus the sanitized location
// the client should resume at.
type LoginResponse struct {
	User       *models.User `json:"user"`
	RedirectTo string       `json:"redirect_to,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
