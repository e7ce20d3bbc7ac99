package server

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"testdeck/internal/handlers"
	"testdeck/internal/middlewares"
)

func setupRouter(ctx *middlewares.AppContext, loginLimiter *middlewares.LoginLimiter) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middlewares.ClientIPMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(ctx.SessionManager.LoadAndSave)

	r.Use(middlewares.AppContextMiddleware(ctx))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
		AllowedMethods:   ctx.Config.CORS.AllowedMethods,
		AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
		ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
		AllowCredentials: ctx.Config.CORS.AllowCredentials,
		MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.Use(middleware.Compress(5))

	webRoot := ctx.Config.Server.WebRoot
	index := filepath.Join(webRoot, "index.html")

	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(filepath.Join(webRoot, "assets")))))
	r.Handle("/favicon.ico", http.FileServer(http.Dir(webRoot)))

	// The login and error pages stay reachable anonymously; everything else in
	// the page tree sits behind the guard, so a deep link or a hard reload hits
	// the same check as in-app navigation.
	r.Get(middlewares.LoginRoute, func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, index)
	})
	r.Get("/error", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, index)
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequirePageAuth)
		r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/api/") {
				http.NotFound(w, r)
				return
			}
			http.ServeFile(w, r, index)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewares.OptionalAuth)

		r.Route("/auth", func(r chi.Router) {
			r.Get("/status", ctx.HandlerFunc(handlers.AuthStatusHandler))
			r.With(loginLimiter.Middleware).Post("/login", ctx.HandlerFunc(handlers.POSTLoginHandler))
			r.Post("/logout", ctx.HandlerFunc(handlers.POSTLogoutHandler))
			r.With(middlewares.RequireAuth).Post("/change-password", ctx.HandlerFunc(handlers.POSTChangePasswordHandler))

			r.Get("/sso/login", ctx.HandlerFunc(handlers.GETOIDCLoginHandler))
			r.Get("/sso/callback", ctx.HandlerFunc(handlers.GETOIDCCallbackHandler))
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAuth)

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", ctx.HandlerFunc(handlers.GETProjectsHandler))
				r.Post("/", ctx.HandlerFunc(handlers.POSTProjectHandler))

				r.Route("/{projectID}", func(r chi.Router) {
					r.Get("/test-cases", ctx.HandlerFunc(handlers.GETTestCasesHandler))
					r.Post("/test-cases", ctx.HandlerFunc(handlers.POSTTestCaseHandler))
					r.Get("/test-plans", ctx.HandlerFunc(handlers.GETTestPlansHandler))
					r.Post("/test-plans", ctx.HandlerFunc(handlers.POSTTestPlanHandler))
					r.Get("/test-runs", ctx.HandlerFunc(handlers.GETTestRunsHandler))
					r.Post("/test-runs", ctx.HandlerFunc(handlers.POSTTestRunHandler))
				})
			})

			r.Get("/environments", ctx.HandlerFunc(handlers.GETEnvironmentsHandler))
		})

		r.Route("/v1", func(r chi.Router) {
			r.Get("/health", ctx.HandlerFunc(handlers.HandlerHealth))
		})
	})

	return r
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
