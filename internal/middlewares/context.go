package middlewares

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"testdeck/internal/config"
	"testdeck/internal/data"
	"testdeck/internal/models"
	"testdeck/internal/upstream"
)

// AppContext carries the per-request view of the application: configuration,
// logger, the session manager owning the current user, the authenticator and
// the shared upstream client. It is installed once per request by
// AppContextMiddleware.
type AppContext struct {
	context.Context
	Config         *config.Config
	Logger         *slog.Logger
	SessionManager SessionProvider
	Authenticator  AuthProvider
	Upstream       UpstreamProvider
	OIDCProvider   OIDCProvider
	Reference      *data.Service

	Request  *http.Request
	Response http.ResponseWriter

	principal *models.User
}

type contextKey string

const appContextKey contextKey = "appContext"

func AppContextMiddleware(baseCtx *AppContext) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCtx := &AppContext{
				Context:        r.Context(),
				Config:         baseCtx.Config,
				Logger:         baseCtx.Logger,
				SessionManager: baseCtx.SessionManager,
				Authenticator:  baseCtx.Authenticator,
				Upstream:       baseCtx.Upstream,
				OIDCProvider:   baseCtx.OIDCProvider,
				Reference:      baseCtx.Reference,
				Request:        r,
				Response:       w,
			}

			ctx := context.WithValue(r.Context(), appContextKey, requestCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type AppHandler func(*AppContext)

// HandlerFunc converts an AppHandler to an http.HandlerFunc.
func (ctx *AppContext) HandlerFunc(h AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		h(appCtx)
	}
}

func NewAppContext(ctx context.Context, cfg *config.Config, logger *slog.Logger, sessionManager SessionProvider, authenticator AuthProvider, upstreamClient UpstreamProvider, oidcProvider OIDCProvider, reference *data.Service) *AppContext {
	return &AppContext{
		Context:        ctx,
		Config:         cfg,
		Logger:         logger,
		SessionManager: sessionManager,
		Authenticator:  authenticator,
		Upstream:       upstreamClient,
		OIDCProvider:   oidcProvider,
		Reference:      reference,
	}
}

func GetAppContext(r *http.Request) *AppContext {
	if ctx, ok := r.Context().Value(appContextKey).(*AppContext); ok {
		return ctx
	}

	return nil
}

// SetPrincipal records the authenticated identity for the rest of the request.
func (ctx *AppContext) SetPrincipal(user *models.User) {
	ctx.principal = user
}

func (ctx *AppContext) GetPrincipal() *models.User {
	return ctx.principal
}

// AuthedContext returns a context that carries the request principal so the
// upstream client injects its credentials.
func (ctx *AppContext) AuthedContext() context.Context {
	if ctx.principal == nil {
		return ctx.Context
	}
	return upstream.ContextWithUser(ctx.Context, ctx.principal)
}

func (ctx *AppContext) Redirect(url string, status int) {
	http.Redirect(ctx.Response, ctx.Request, url, status)
}

func (ctx *AppContext) WriteJSON(status int, data interface{}) {
	ctx.Response.Header().Set("Content-Type", "application/json")
	ctx.Response.WriteHeader(status)
	if err := json.NewEncoder(ctx.Response).Encode(data); err != nil {
		ctx.Logger.Error("failed to marshal json", "error", err)
	}
}

func (ctx *AppContext) SetJSONError(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"error": message,
	})
}

func (ctx *AppContext) SetJSONStatus(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"status": message,
	})
}
