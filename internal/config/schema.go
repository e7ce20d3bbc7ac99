package config

import (
	"time"

	"github.com/prometheus/common/model"
)

const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
)

type Config struct {
	Environment string         `yaml:"environment"`
	Server      ServerConfig   `yaml:"server"`
	Upstream    UpstreamConfig `yaml:"upstream"`
	OIDC        *OIDCConfig    `yaml:"oidc"`
	Log         LogConfig      `yaml:"log"`
	CORS        CORSConfig     `yaml:"cors"`
	Sessions    SessionConfig  `yaml:"sessions"`
	Cache       CacheConfig    `yaml:"cache"`
	Redis       *RedisConfig   `yaml:"redis"`
	Login       LoginConfig    `yaml:"login"`
}

type ServerConfig struct {
	Port    int                `yaml:"port"`
	WebRoot string             `yaml:"web_root"`
	Debug   *ServerDebugConfig `yaml:"debug"`
}

var DefaultServerConfig = ServerConfig{
	Port:    8080,
	WebRoot: "web/dist",
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

// UpstreamConfig describes the test-management API this front end proxies to.
// The effective base URL is resolved exactly once at startup, see BaseURL.
type UpstreamConfig struct {
	URL             string         `yaml:"url"`
	Timeout         model.Duration `yaml:"timeout"`
	RefreshInterval model.Duration `yaml:"refresh_interval"`
}

var DefaultUpstreamConfig = UpstreamConfig{
	Timeout:         model.Duration(30 * time.Second),
	RefreshInterval: model.Duration(5 * time.Minute),
}

// DevUpstreamURL is the upstream endpoint used in development when none is
// configured.
const DevUpstreamURL = "http://localhost:8000"

type OIDCConfig struct {
	Enabled      bool     `yaml:"enabled"`
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	IssuerURL    string   `yaml:"issuer_url"`
	RedirectURI  string   `yaml:"redirect_url"`
	Scopes       []string `yaml:"scopes"`
}

var DefaultOIDCConfig = OIDCConfig{
	Scopes: []string{"openid", "profile", "email"},
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins: []string{"http://localhost:5173"},
	AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	AllowedHeaders: []string{"*"},
	MaxAgeSeconds:  300,
}

type SessionConfig struct {
	Store        string         `yaml:"store"`
	FixedTimeout model.Duration `yaml:"fixed_timeout"`
	Name         string         `yaml:"name"`
	Secure       bool           `yaml:"secure"`
}

var DefaultSessionConfig = SessionConfig{
	Store:        "memory",
	FixedTimeout: model.Duration(24 * time.Hour),
	Name:         "testdeck_session",
	Secure:       true,
}

type CacheConfig struct {
	Type string         `yaml:"type"` // "memory" or "redis"
	TTL  model.Duration `yaml:"ttl"`
}

var DefaultCacheConfig = CacheConfig{
	Type: "memory",
	TTL:  model.Duration(5 * time.Minute),
}

type RedisConfig struct {
	Address      string               `yaml:"address"`
	Username     string               `yaml:"username"`
	Password     string               `yaml:"password"`
	Sentinel     *RedisSentinelConfig `yaml:"sentinel"`
	SessionIndex int                  `yaml:"session_index"`
	CacheIndex   int                  `yaml:"cache_index"`
}

var DefaultRedisConfig = RedisConfig{
	SessionIndex: 0,
	CacheIndex:   1,
}

type RedisSentinelConfig struct {
	MasterName        string   `yaml:"master_name"`
	SentinelAddresses []string `yaml:"addresses"`
	SentinelPassword  string   `yaml:"password"`
	SentinelUsername  string   `yaml:"username"`
}

// LoginConfig throttles credential logins per client IP.
type LoginConfig struct {
	RatePerMinute float64 `yaml:"rate_per_minute"`
	Burst         int     `yaml:"burst"`
}

var DefaultLoginConfig = LoginConfig{
	RatePerMinute: 10,
	Burst:         5,
}
