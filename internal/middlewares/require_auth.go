package middlewares

import (
	"net/http"
)

// OptionalAuth resolves the session identity when present without enforcing
// anything. Handlers behind it see the principal if there is one.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if user, ok := appCtx.SessionManager.CurrentUser(appCtx); ok {
			appCtx.SetPrincipal(user)
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAuth guards the protected API subtree. Anonymous callers get a 401;
// no request reaches a protected handler without a resolved principal. The
// check runs on every request entering the subtree, so deep links and cold
// loads are guarded exactly like in-app navigation.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		user, ok := appCtx.SessionManager.CurrentUser(appCtx)
		if !ok {
			appCtx.SetJSONError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
			return
		}

		appCtx.SetPrincipal(user)
		next.ServeHTTP(w, r)
	})
}

// RequirePageAuth guards the protected page subtree. The guard decision runs
// before anything of the protected page is written, so protected content never
// flashes before the redirect.
func RequirePageAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		user, ok := appCtx.SessionManager.CurrentUser(appCtx)

		decision := DecideGuard(ok, r.URL)
		if decision.Action == GuardRedirect {
			appCtx.Logger.Debug("redirecting anonymous visitor to login",
				"target", r.URL.RequestURI(),
			)
			appCtx.Redirect(decision.Location, http.StatusFound)
			return
		}

		appCtx.SetPrincipal(user)
		next.ServeHTTP(w, r)
	})
}
