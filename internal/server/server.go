package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"testdeck/internal/auth"
	"testdeck/internal/config"
	"testdeck/internal/data"
	"testdeck/internal/middlewares"
	"testdeck/internal/upstream"
)

type Server struct {
	cfg          *config.Config
	logger       *slog.Logger
	appCtx       *middlewares.AppContext
	httpServer   *http.Server
	debugServer  *http.Server
	reference    *data.Service
	loginLimiter *middlewares.LoginLimiter
	cancel       context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	sessionManager, err := auth.NewSessionManager(logger, cfg)
	if err != nil {
		cancel()
		return nil, err
	}

	upstreamClient, err := upstream.New(cfg, logger)
	if err != nil {
		cancel()
		return nil, err
	}

	oidcProvider, err := auth.NewOIDCProvider(ctx, cfg.OIDC)
	if err != nil {
		cancel()
		return nil, err
	}

	authenticator := auth.NewAuthenticator(logger)

	cache, err := data.NewCacheProvider(cfg, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to set up cache provider: %w", err)
	}

	reference := data.NewService(upstreamClient, cache, time.Duration(cfg.Cache.TTL), logger)

	loginLimiter := middlewares.NewLoginLimiter(cfg.Login)

	appCtx := middlewares.NewAppContext(ctx, cfg, logger, sessionManager, authenticator, upstreamClient, oidcProvider, reference)

	router := setupRouter(appCtx, loginLimiter)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	var debugServer *http.Server
	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		debugServer = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler: setupDebugRouter(),
		}
	}

	return &Server{
		cfg:          cfg,
		logger:       logger,
		appCtx:       appCtx,
		httpServer:   httpServer,
		debugServer:  debugServer,
		reference:    reference,
		loginLimiter: loginLimiter,
		cancel:       cancel,
	}, nil
}

// Start runs the server until a shutdown signal arrives or the base context is
// canceled, then drains everything with a 30 second grace period.
func (s *Server) Start() error {
	go s.runReferenceRefresh(s.appCtx, time.Duration(s.cfg.Upstream.RefreshInterval))

	go func() {
		s.logger.Info("server started", "port", s.cfg.Server.Port, "upstream", s.cfg.Upstream.URL)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("debug server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("debug server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		s.logger.Info("shutdown signal received")
	case <-s.appCtx.Done():
		s.logger.Info("context canceled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	s.logger.Info("shutting down server")

	s.cancel()
	s.loginLimiter.Stop()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("debug server forced to shutdown", "error", err)
		}
	}

	s.logger.Info("server exited")
	return nil
}
