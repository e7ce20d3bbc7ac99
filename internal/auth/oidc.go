package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"testdeck/internal/config"
	"testdeck/internal/middlewares"
	"testdeck/internal/models"
	"testdeck/internal/upstream"
)

// OIDCError carries both an operator-facing message and the error-page URL the
// browser should land on.
type OIDCError struct {
	RedirectURL string
	Message     string
}

func (e *OIDCError) Error() string {
	return e.Message
}

// NewOIDCProvider builds the SSO provider from discovery. Returns nil when SSO
// is not configured.
func NewOIDCProvider(ctx context.Context, cfg *config.OIDCConfig) (middlewares.OIDCProvider, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	oauth2Config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     provider.Endpoint(),
		Scopes:       cfg.Scopes,
		RedirectURL:  cfg.RedirectURI,
	}

	return &oidcProvider{
		provider:     provider,
		oauth2Config: oauth2Config,
	}, nil
}

type oidcProvider struct {
	provider     *oidc.Provider
	oauth2Config *oauth2.Config
}

func generateRandString(bytes int) string {
	b := make([]byte, bytes)
	_, _ = rand.Read(b)

	return base64.URLEncoding.EncodeToString(b)
}

func generateCodeVerifier() (string, string) {
	b := make([]byte, 56)
	_, _ = rand.Read(b)

	codeVerifier := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b)
	hash := sha256.Sum256([]byte(codeVerifier))
	codeChallenge := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(hash[:])
	return codeVerifier, codeChallenge
}

func (p *oidcProvider) StartLogin(ctx *middlewares.AppContext) (string, error) {
	state := generateRandString(32)
	nonce := generateRandString(32)
	codeVerifier, codeChallenge := generateCodeVerifier()

	ctx.SessionManager.SetOAuthLoginAttempt(ctx, &models.OAuthLoginAttempt{
		State:        state,
		Nonce:        nonce,
		CodeVerifier: codeVerifier,
	})

	authURL := p.oauth2Config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("nonce", nonce),
		oauth2.SetAuthURLParam("response_type", "code"),
		oauth2.SetAuthURLParam("code_challenge", codeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)

	return authURL, nil
}

// HandleCallback validates the provider response (state, code exchange, token
// verification, nonce) and exchanges the verified identity token for an
// upstream session.
func (p *oidcProvider) HandleCallback(ctx *middlewares.AppContext) (*models.User, error) {
	if errorParam := ctx.Request.URL.Query().Get("error"); errorParam != "" {
		errorDescription := ctx.Request.URL.Query().Get("error_description")

		errorURL := "/error?error=" + url.QueryEscape(errorParam)
		if errorDescription != "" {
			errorURL += "&error_description=" + url.QueryEscape(errorDescription)
		}

		return nil, &OIDCError{RedirectURL: errorURL, Message: errorParam}
	}

	attempt, ok := ctx.SessionManager.ConsumeOAuthLoginAttempt(ctx)
	if !ok {
		return nil, &OIDCError{
			RedirectURL: "/error?error=invalid_request&error_description=" + url.QueryEscape("No oauth state found in session"),
			Message:     "no oauth state found in session",
		}
	}

	receivedState := ctx.Request.URL.Query().Get("state")
	if receivedState != attempt.State {
		return nil, &OIDCError{
			RedirectURL: "/error?error=invalid_request&error_description=" + url.QueryEscape("Invalid state parameter"),
			Message:     "invalid state parameter",
		}
	}

	code := ctx.Request.URL.Query().Get("code")
	if code == "" {
		return nil, &OIDCError{
			RedirectURL: "/error?error=invalid_request&error_description=" + url.QueryEscape("No authorization code received"),
			Message:     "no authorization code received",
		}
	}

	token, err := p.oauth2Config.Exchange(ctx.Request.Context(), code, oauth2.VerifierOption(attempt.CodeVerifier))
	if err != nil {
		return nil, &OIDCError{
			RedirectURL: "/error?error=invalid_grant&error_description=" + url.QueryEscape("Failed to exchange code for token"),
			Message:     fmt.Sprintf("failed to exchange code for token: %v", err),
		}
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, &OIDCError{
			RedirectURL: "/error?error=invalid_token&error_description=" + url.QueryEscape("No id_token found in oauth2 token"),
			Message:     "no id_token found in oauth2 token",
		}
	}

	verifier := p.provider.Verifier(&oidc.Config{ClientID: p.oauth2Config.ClientID})

	idToken, err := verifier.Verify(ctx.Request.Context(), rawIDToken)
	if err != nil {
		return nil, &OIDCError{
			RedirectURL: "/error?error=invalid_token&error_description=" + url.QueryEscape("Failed to verify ID Token"),
			Message:     fmt.Sprintf("failed to verify ID Token: %v", err),
		}
	}

	if idToken.Nonce != attempt.Nonce {
		return nil, &OIDCError{
			RedirectURL: "/error?error=server_error&error_description=" + url.QueryEscape("Invalid Nonce"),
			Message:     "nonce in ID Token is invalid",
		}
	}

	user, err := ctx.Upstream.SSOLogin(ctx, upstream.SSOLoginRequest{IDToken: rawIDToken})
	if err != nil {
		return nil, &OIDCError{
			RedirectURL: "/error?error=server_error&error_description=" + url.QueryEscape("Failed to establish upstream session"),
			Message:     fmt.Sprintf("failed to establish upstream session: %v", err),
		}
	}

	return user, nil
}
