package auth

type SessionKey string

var (
	SessionKeyUserRecord         SessionKey = "user_session"
	SessionKeyRedirectAfterLogin SessionKey = "redirect_after_login"
	SessionKeyOAuthAttempt       SessionKey = "oauth_login_attempt"
)
