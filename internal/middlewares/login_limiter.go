package middlewares

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"testdeck/internal/config"
	"testdeck/internal/metrics"
)

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterIdleExpiry      = 15 * time.Minute
)

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// LoginLimiter throttles credential login attempts per client IP. It sits in
// front of the login handler only; authenticated traffic is not limited here.
type LoginLimiter struct {
	limit rate.Limit
	burst int

	mu      sync.Mutex
	clients map[string]*clientLimiter

	stopCh chan struct{}
}

func NewLoginLimiter(cfg config.LoginConfig) *LoginLimiter {
	l := &LoginLimiter{
		limit:   rate.Limit(cfg.RatePerMinute / 60.0),
		burst:   cfg.Burst,
		clients: make(map[string]*clientLimiter),
		stopCh:  make(chan struct{}),
	}

	go l.cleanupLoop()

	return l
}

func (l *LoginLimiter) Stop() {
	close(l.stopCh)
}

func (l *LoginLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ip := ClientIP(r)

		if !l.allow(ip) {
			metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginResultThrottled).Inc()
			appCtx.Logger.Warn("login attempt throttled", "client_ip", ip)
			appCtx.SetJSONError(http.StatusTooManyRequests, "too many login attempts, try again later")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (l *LoginLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, exists := l.clients[ip]
	if !exists {
		entry = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = entry
	}
	entry.lastAccess = time.Now()

	return entry.limiter.Allow()
}

func (l *LoginLimiter) cleanupLoop() {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopCh:
			return
		case <-ticker.C:
			l.mu.Lock()
			cutoff := time.Now().Add(-limiterIdleExpiry)
			for ip, entry := range l.clients {
				if entry.lastAccess.Before(cutoff) {
					delete(l.clients, ip)
				}
			}
			l.mu.Unlock()
		}
	}
}
