package persistence

import (
	"io"
	"log/slog"
	"testing"

	"menuboard/config"
	"menuboard/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, driver string) Params {
	t.Helper()

	cfg := &config.Config{}
	cfg.Store.Driver = driver

	return Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNew_MemoryDriverSharesOneStore(t *testing.T) {
	result, err := New(newParams(t, " Memory "))
	require.NoError(t, err)

	store, ok := result.TxManager.(*memory.Store)
	require.True(t, ok)
	assert.Same(t, store, result.CategoryRepository)
	assert.Same(t, store, result.ProductRepository)
	assert.Same(t, store, result.AnalyticsRepository)
}

func TestNew_PostgresDriverRequiresConfig(t *testing.T) {
	_, err := New(newParams(t, "postgres"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres configuration is required")
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(newParams(t, "sqlite"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported store driver "sqlite"`)
}
