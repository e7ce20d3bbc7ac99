package models

import "time"

// User is the authenticated identity record echoed by the upstream login
// endpoint. It is the value persisted in the session store; Token is the
// upstream-issued credential attached to proxied requests.
type User struct {
	ID          int64     `json:"user_id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Role        string    `json:"role,omitempty"`
	Token       string    `json:"token,omitempty"`
	LoggedInAt  time.Time `json:"logged_in_at,omitzero"`
}

// OAuthLoginAttempt holds the transient parameters of an in-flight OIDC
// authorization request. It lives in the session between the redirect to the
// identity provider and the callback.
type OAuthLoginAttempt struct {
	State        string `json:"state"`
	Nonce        string `json:"nonce"`
	CodeVerifier string `json:"code_verifier"`
}
