package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"

	"testdeck/internal/config"
	"testdeck/internal/metrics"
	"testdeck/internal/middlewares"
	"testdeck/internal/models"
)

// SessionManager wraps the scs session manager with typed accessors for the
// identity record, the pending redirect target and the transient SSO state.
// It is the only writer of session data; IsAuthenticated is always derived
// from the stored record, so the two can never disagree.
type SessionManager struct {
	*scs.SessionManager
	store *SessionStore
}

func NewSessionManager(logger *slog.Logger, cfg *config.Config) (*SessionManager, error) {
	sessionManager := scs.New()

	switch cfg.Sessions.Store {
	case "memory":
		sessionManager.Store = memstore.New()
	case "redis":
		var client *redis.Client

		if cfg.Redis.Sentinel != nil {
			logger.Info("connecting to redis via sentinel",
				"master", cfg.Redis.Sentinel.MasterName,
				"sentinels", cfg.Redis.Sentinel.SentinelAddresses)

			client = redis.NewFailoverClient(&redis.FailoverOptions{
				MasterName:       cfg.Redis.Sentinel.MasterName,
				SentinelAddrs:    cfg.Redis.Sentinel.SentinelAddresses,
				SentinelUsername: cfg.Redis.Sentinel.SentinelUsername,
				SentinelPassword: cfg.Redis.Sentinel.SentinelPassword,
				Username:         cfg.Redis.Username,
				Password:         cfg.Redis.Password,
				DB:               cfg.Redis.SessionIndex,
				MinIdleConns:     2,
			})
		} else {
			client = redis.NewClient(&redis.Options{
				Addr:         cfg.Redis.Address,
				Username:     cfg.Redis.Username,
				Password:     cfg.Redis.Password,
				DB:           cfg.Redis.SessionIndex,
				MinIdleConns: 2,
			})
		}

		ctx := context.Background()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis connection failed: %w", err)
		}

		if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
			collector := redisprometheus.NewCollector(metrics.Namespace, "sessions", client)
			if err := prometheus.Register(collector); err != nil {
				logger.Debug("failed to register redis sessions collector: already registered", "error", err)
			}
		}

		sessionManager.Store = goredisstore.New(client)
	default:
		return nil, fmt.Errorf("unsupported session store: %s", cfg.Sessions.Store)
	}

	sessionManager.Lifetime = time.Duration(cfg.Sessions.FixedTimeout)

	sessionManager.Cookie.Name = cfg.Sessions.Name
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = cfg.Sessions.Secure
	sessionManager.Cookie.Path = "/"

	return &SessionManager{
		SessionManager: sessionManager,
		store:          NewSessionStore(sessionManager),
	}, nil
}

func (s *SessionManager) LoadAndSave(next http.Handler) http.Handler {
	return s.SessionManager.LoadAndSave(next)
}

func (s *SessionManager) CurrentUser(ctx *middlewares.AppContext) (*models.User, bool) {
	user := s.store.Get(ctx)
	return user, user != nil
}

func (s *SessionManager) IsAuthenticated(ctx *middlewares.AppContext) bool {
	_, ok := s.CurrentUser(ctx)
	return ok
}

func (s *SessionManager) SetUser(ctx *middlewares.AppContext, user *models.User) {
	s.store.Set(ctx, user)
}

func (s *SessionManager) RenewToken(ctx *middlewares.AppContext) error {
	return s.SessionManager.RenewToken(ctx)
}

func (s *SessionManager) Destroy(ctx *middlewares.AppContext) error {
	return s.SessionManager.Destroy(ctx)
}

func (s *SessionManager) SetRedirectAfterLogin(ctx *middlewares.AppContext, target string) {
	s.Put(ctx, string(SessionKeyRedirectAfterLogin), target)
}

// ConsumeRedirectAfterLogin returns the pending redirect target and discards
// it; the target is only good for one login.
func (s *SessionManager) ConsumeRedirectAfterLogin(ctx *middlewares.AppContext) string {
	return s.PopString(ctx, string(SessionKeyRedirectAfterLogin))
}

func (s *SessionManager) SetOAuthLoginAttempt(ctx *middlewares.AppContext, attempt *models.OAuthLoginAttempt) {
	data, err := json.Marshal(attempt)
	if err != nil {
		return
	}
	s.Put(ctx, string(SessionKeyOAuthAttempt), data)
}

func (s *SessionManager) ConsumeOAuthLoginAttempt(ctx *middlewares.AppContext) (*models.OAuthLoginAttempt, bool) {
	raw := s.PopBytes(ctx, string(SessionKeyOAuthAttempt))
	if len(raw) == 0 {
		return nil, false
	}

	var attempt models.OAuthLoginAttempt
	if err := json.Unmarshal(raw, &attempt); err != nil {
		return nil, false
	}

	return &attempt, true
}
