package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"menuboard/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(t *testing.T, cfg *config.Config) (logger.Interface, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg), buf
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return `SELECT * FROM "categories"`, 3 }

	t.Run("logs failed queries", func(t *testing.T) {
		l, buf := newBufferedGormLogger(t, &config.Config{})
		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("syntax error"))

		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "syntax error")
		assert.Contains(t, buf.String(), "component=gorm")
	})

	t.Run("ignores record not found", func(t *testing.T) {
		l, buf := newBufferedGormLogger(t, &config.Config{})
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("logs slow queries against the configured threshold", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Store.SlowQueryThreshold = time.Millisecond
		l, buf := newBufferedGormLogger(t, cfg)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		l, buf := newBufferedGormLogger(t, &config.Config{})
		l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

		assert.Empty(t, buf.String())
	})

	t.Run("debug logs every query", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Env.Debug = true
		l, buf := newBufferedGormLogger(t, cfg)
		l.Trace(context.Background(), time.Now(), sqlFn, nil)

		assert.Contains(t, buf.String(), "GORM query")
		assert.Contains(t, buf.String(), "rows=3")
	})
}

func TestGormSlogLogger_LevelFiltering(t *testing.T) {
	l, buf := newBufferedGormLogger(t, &config.Config{})

	l.Info(context.Background(), "hidden %d", 1)
	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "pool %s", "exhausted")
	assert.Contains(t, buf.String(), "pool exhausted")
}
