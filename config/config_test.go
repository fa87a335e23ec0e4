package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: develop
  serviceName: menuboard
http:
  port: 8080
store:
  driver: memory
  slowQueryThreshold: 250ms
redis:
  enabled: false
  keyPrefix: "menuboard:"
  menuTtl: 5m
secretKey:
  access: from-file
cart:
  currency: "S/"
`

func TestLoadWithEnv_FileThenEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testYAML), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_MENUTTL", "90s")

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "menuboard", cfg.Env.ServiceName)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, 250*time.Millisecond, cfg.Store.SlowQueryThreshold)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.Redis)
	assert.Equal(t, "menuboard:", cfg.Redis.KeyPrefix)
	assert.Equal(t, 90*time.Second, cfg.Redis.MenuTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultStoreDriver, cfg.Store.Driver)
	assert.Equal(t, defaultCurrency, cfg.Cart.Currency)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 12*time.Hour, cfg.Auth.DefaultTokenTTL)

	cfg = &Config{}
	cfg.Store.Driver = "memory"
	cfg.Cart.Currency = "USD"
	applyDefaults(cfg)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "USD", cfg.Cart.Currency)
}
