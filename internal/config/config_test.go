package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_RequiresPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfigFile(t, "server:\n  port: 9090\n"))
	require.NoError(t, err)

	assert.Equal(t, EnvironmentDevelopment, cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, DefaultServerConfig.WebRoot, cfg.Server.WebRoot)
	assert.Equal(t, DevUpstreamURL, cfg.Upstream.URL)
	assert.Equal(t, DefaultUpstreamConfig.Timeout, cfg.Upstream.Timeout)
	assert.Equal(t, DefaultSessionConfig.Store, cfg.Sessions.Store)
	assert.Equal(t, DefaultSessionConfig.Name, cfg.Sessions.Name)
	assert.Equal(t, DefaultCacheConfig.Type, cfg.Cache.Type)
	assert.Equal(t, DefaultLoginConfig.RatePerMinute, cfg.Login.RatePerMinute)
	assert.Equal(t, DefaultLoginConfig.Burst, cfg.Login.Burst)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_ProductionRequiresUpstreamURL(t *testing.T) {
	_, err := LoadConfig(writeConfigFile(t, "environment: production\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream.url is required in production")
}

func TestLoadConfig_ProductionWithExplicitUpstream(t *testing.T) {
	cfg, err := LoadConfig(writeConfigFile(t, `
environment: production
upstream:
  url: https://api.testdeck.example.com
`))
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://api.testdeck.example.com", cfg.Upstream.URL)
}

func TestLoadConfig_DurationsParseFromYAML(t *testing.T) {
	cfg, err := LoadConfig(writeConfigFile(t, `
upstream:
  timeout: 10s
  refresh_interval: 2m
sessions:
  fixed_timeout: 24h
`))
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, time.Duration(cfg.Upstream.Timeout))
	assert.Equal(t, 2*time.Minute, time.Duration(cfg.Upstream.RefreshInterval))
	assert.Equal(t, 24*time.Hour, time.Duration(cfg.Sessions.FixedTimeout))
}

func TestLoadConfig_EnvironmentVariableOverridesUpstream(t *testing.T) {
	t.Setenv(EnvUpstreamURL, "http://upstream.internal:8000")

	cfg, err := LoadConfig(writeConfigFile(t, "upstream:\n  url: http://from-file:8000\n"))
	require.NoError(t, err)

	assert.Equal(t, "http://upstream.internal:8000", cfg.Upstream.URL)
}

func TestLoadConfig_EnvironmentVariableSelectsEnvironment(t *testing.T) {
	t.Setenv(EnvEnvironment, EnvironmentProduction)
	t.Setenv(EnvUpstreamURL, "https://api.testdeck.example.com")

	cfg, err := LoadConfig(writeConfigFile(t, ""))
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
}

func TestLoadConfig_RejectsUnknownEnvironment(t *testing.T) {
	_, err := LoadConfig(writeConfigFile(t, "environment: staging\n"))
	assert.Error(t, err)
}

func TestLoadConfig_RejectsInvalidLogLevel(t *testing.T) {
	_, err := LoadConfig(writeConfigFile(t, "log:\n  level: loud\n"))
	assert.Error(t, err)
}

func TestLoadConfig_RedisStoreRequiresAddress(t *testing.T) {
	_, err := LoadConfig(writeConfigFile(t, `
sessions:
  store: redis
redis:
  password: secret
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis address is required")
}

func TestLoadConfig_RedisIndexesMustDiffer(t *testing.T) {
	_, err := LoadConfig(writeConfigFile(t, `
sessions:
  store: redis
redis:
  address: localhost:6379
  session_index: 2
  cache_index: 2
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session_index and cache_index should be different")
}

func TestLoadConfig_RedisDefaultsKeepStoresApart(t *testing.T) {
	cfg, err := LoadConfig(writeConfigFile(t, `
sessions:
  store: redis
redis:
  address: localhost:6379
`))
	require.NoError(t, err)

	assert.NotEqual(t, cfg.Redis.SessionIndex, cfg.Redis.CacheIndex)
}

func TestLoadConfig_OIDCEnabledRequiresClientCredentials(t *testing.T) {
	_, err := LoadConfig(writeConfigFile(t, `
oidc:
  enabled: true
  issuer_url: https://idp.example.com
  redirect_url: https://testdeck.example.com/api/auth/sso/callback
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oidc.client_id is required")
}

func TestLoadConfig_OIDCScopesDefaultWhenOmitted(t *testing.T) {
	cfg, err := LoadConfig(writeConfigFile(t, `
oidc:
  enabled: true
  client_id: testdeck
  client_secret: secret
  issuer_url: https://idp.example.com
  redirect_url: https://testdeck.example.com/api/auth/sso/callback
`))
	require.NoError(t, err)

	assert.Equal(t, DefaultOIDCConfig.Scopes, cfg.OIDC.Scopes)
}
