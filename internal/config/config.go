package config

import (
	"fmt"
	"net"
	"os"

	"gopkg.in/yaml.v3"
)

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required (use -config or -c)")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvironmentOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

var (
	EnvEnvironment           = "TESTDECK_ENVIRONMENT"
	EnvUpstreamURL           = "TESTDECK_UPSTREAM_URL"
	EnvOIDCClientID          = "TESTDECK_OIDC_CLIENT_ID"
	EnvOIDCClientSecret      = "TESTDECK_OIDC_CLIENT_SECRET"
	EnvOIDCIssuerURL         = "TESTDECK_OIDC_ISSUER_URL"
	EnvOIDCRedirectURL       = "TESTDECK_OIDC_REDIRECT_URL"
	EnvRedisPassword         = "TESTDECK_REDIS_PASSWORD"
	EnvRedisUsername         = "TESTDECK_REDIS_USERNAME"
	EnvRedisSentinelUsername = "TESTDECK_REDIS_SENTINEL_USERNAME"
	EnvRedisSentinelPassword = "TESTDECK_REDIS_SENTINEL_PASSWORD"
)

func applyEnvironmentOverrides(config *Config) {
	if environment := os.Getenv(EnvEnvironment); environment != "" {
		config.Environment = environment
	}

	if upstreamURL := os.Getenv(EnvUpstreamURL); upstreamURL != "" {
		config.Upstream.URL = upstreamURL
	}

	if clientID := os.Getenv(EnvOIDCClientID); clientID != "" {
		if config.OIDC == nil {
			config.OIDC = &OIDCConfig{}
		}
		config.OIDC.ClientID = clientID
	}

	if clientSecret := os.Getenv(EnvOIDCClientSecret); clientSecret != "" {
		if config.OIDC == nil {
			config.OIDC = &OIDCConfig{}
		}
		config.OIDC.ClientSecret = clientSecret
	}

	if issuerURL := os.Getenv(EnvOIDCIssuerURL); issuerURL != "" {
		if config.OIDC == nil {
			config.OIDC = &OIDCConfig{}
		}
		config.OIDC.IssuerURL = issuerURL
	}

	if redirectURL := os.Getenv(EnvOIDCRedirectURL); redirectURL != "" {
		if config.OIDC == nil {
			config.OIDC = &OIDCConfig{}
		}
		config.OIDC.RedirectURI = redirectURL
	}

	if redisPassword := os.Getenv(EnvRedisPassword); redisPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = redisPassword
	}

	if redisUsername := os.Getenv(EnvRedisUsername); redisUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Username = redisUsername
	}

	if sentinelUsername := os.Getenv(EnvRedisSentinelUsername); sentinelUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		if config.Redis.Sentinel == nil {
			config.Redis.Sentinel = &RedisSentinelConfig{}
		}
		config.Redis.Sentinel.SentinelUsername = sentinelUsername
	}

	if sentinelPassword := os.Getenv(EnvRedisSentinelPassword); sentinelPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		if config.Redis.Sentinel == nil {
			config.Redis.Sentinel = &RedisSentinelConfig{}
		}
		config.Redis.Sentinel.SentinelPassword = sentinelPassword
	}
}

func validateConfig(config *Config) error {
	err := config.validateEnvironment()
	if err != nil {
		return err
	}

	err = config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateUpstreamConfig()
	if err != nil {
		return err
	}

	err = config.validateOIDCConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	err = config.validateSessionConfig()
	if err != nil {
		return err
	}

	err = config.validateCacheConfig()
	if err != nil {
		return err
	}

	if config.Cache.Type == "redis" || config.Sessions.Store == "redis" {
		err = config.validateRedisConfig()
		if err != nil {
			return err
		}
	}

	err = config.validateLoginConfig()
	if err != nil {
		return err
	}

	return nil
}

func (c *Config) validateEnvironment() error {
	switch c.Environment {
	case "":
		c.Environment = EnvironmentDevelopment
	case EnvironmentProduction, EnvironmentDevelopment:
	default:
		return fmt.Errorf("invalid environment: %s, options are %s or %s", c.Environment, EnvironmentProduction, EnvironmentDevelopment)
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.WebRoot == "" {
		c.Server.WebRoot = DefaultServerConfig.WebRoot
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
	}

	return nil
}

// validateUpstreamConfig resolves the upstream base endpoint once: production
// deployments must name the endpoint explicitly, development falls back to the
// local dev server.
func (c *Config) validateUpstreamConfig() error {
	if c.Upstream.URL == "" {
		if c.Environment == EnvironmentProduction {
			return fmt.Errorf("upstream.url is required in production")
		}
		c.Upstream.URL = DevUpstreamURL
	}

	if err := validateURL(c.Upstream.URL, "upstream.url"); err != nil {
		return err
	}

	if c.Upstream.Timeout <= 0 {
		c.Upstream.Timeout = DefaultUpstreamConfig.Timeout
	}

	if c.Upstream.RefreshInterval <= 0 {
		c.Upstream.RefreshInterval = DefaultUpstreamConfig.RefreshInterval
	}

	return nil
}

func (c *Config) validateOIDCConfig() error {
	if c.OIDC == nil || !c.OIDC.Enabled {
		return nil
	}

	if c.OIDC.ClientID == "" {
		return fmt.Errorf("oidc.client_id is required when oidc is enabled")
	}

	if c.OIDC.ClientSecret == "" {
		return fmt.Errorf("oidc.client_secret is required when oidc is enabled")
	}

	if err := validateURL(c.OIDC.IssuerURL, "oidc.issuer_url"); err != nil {
		return err
	}

	if err := validateURL(c.OIDC.RedirectURI, "oidc.redirect_url"); err != nil {
		return err
	}

	if len(c.OIDC.Scopes) == 0 {
		c.OIDC.Scopes = DefaultOIDCConfig.Scopes
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig.Format
	} else {
		switch c.Log.Format {
		case "text", "json":
		default:
			return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig.Level
	} else {
		switch c.Log.Level {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
		}
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}

func (c *Config) validateSessionConfig() error {
	if c.Sessions.Store == "" {
		c.Sessions.Store = DefaultSessionConfig.Store
	} else {
		switch c.Sessions.Store {
		case "memory", "redis":
		default:
			return fmt.Errorf("invalid session store: %s, options are 'memory' or 'redis'", c.Sessions.Store)
		}
	}

	if c.Sessions.Name == "" {
		c.Sessions.Name = DefaultSessionConfig.Name
	}

	if c.Sessions.FixedTimeout == 0 {
		c.Sessions.FixedTimeout = DefaultSessionConfig.FixedTimeout
	}

	return nil
}

func (c *Config) validateCacheConfig() error {
	if c.Cache.Type == "" {
		c.Cache.Type = DefaultCacheConfig.Type
	}

	switch c.Cache.Type {
	case "memory":
	case "redis":
		if c.Redis == nil {
			return fmt.Errorf("redis configuration must be present to use redis for the data cache")
		}
	default:
		return fmt.Errorf("invalid cache type: %s, must be 'memory' or 'redis'", c.Cache.Type)
	}

	if c.Cache.TTL <= 0 {
		c.Cache.TTL = DefaultCacheConfig.TTL
	}

	return nil
}

func (c *Config) validateRedisConfig() error {
	if c.Redis == nil {
		return fmt.Errorf("redis config is nil")
	}

	if c.Redis.Address == "" {
		return fmt.Errorf("redis address is required")
	}

	if _, _, err := net.SplitHostPort(c.Redis.Address); err != nil {
		return fmt.Errorf("invalid redis address format (expected host:port): %w", err)
	}

	if c.Redis.SessionIndex == 0 && c.Redis.CacheIndex == 0 {
		c.Redis.SessionIndex = DefaultRedisConfig.SessionIndex
		c.Redis.CacheIndex = DefaultRedisConfig.CacheIndex
	}

	if c.Redis.SessionIndex < 0 {
		return fmt.Errorf("redis session_index must be non-negative, got %d", c.Redis.SessionIndex)
	}

	if c.Redis.CacheIndex < 0 {
		return fmt.Errorf("redis cache_index must be non-negative, got %d", c.Redis.CacheIndex)
	}

	if c.Redis.SessionIndex == c.Redis.CacheIndex {
		return fmt.Errorf("redis session_index and cache_index should be different to avoid data collision (both are %d)", c.Redis.SessionIndex)
	}

	const maxRedisDB = 15
	if c.Redis.SessionIndex > maxRedisDB {
		return fmt.Errorf("redis session_index %d exceeds typical maximum of %d", c.Redis.SessionIndex, maxRedisDB)
	}

	if c.Redis.CacheIndex > maxRedisDB {
		return fmt.Errorf("redis cache_index %d exceeds typical maximum of %d", c.Redis.CacheIndex, maxRedisDB)
	}

	if c.Redis.Sentinel != nil {
		if c.Redis.Sentinel.MasterName == "" {
			return fmt.Errorf("sentinel master_name is required")
		}
		if len(c.Redis.Sentinel.SentinelAddresses) == 0 {
			return fmt.Errorf("at least one sentinel address is required")
		}
	}

	return nil
}

func (c *Config) validateLoginConfig() error {
	if c.Login.RatePerMinute == 0 {
		c.Login.RatePerMinute = DefaultLoginConfig.RatePerMinute
	}

	if c.Login.RatePerMinute < 0 {
		return fmt.Errorf("login.rate_per_minute must be positive, got %v", c.Login.RatePerMinute)
	}

	if c.Login.Burst == 0 {
		c.Login.Burst = DefaultLoginConfig.Burst
	}

	if c.Login.Burst < 0 {
		return fmt.Errorf("login.burst must be positive, got %d", c.Login.Burst)
	}

	return nil
}

// IsProduction reports whether the resolved environment is production.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}
