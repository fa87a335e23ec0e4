package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"menuboard/config"
	"menuboard/internal/domain/lifecycle"
	"menuboard/internal/errors"
	"menuboard/internal/infra/persistence/postgres/migrations"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
)

// Params holds dependencies for the PostgreSQL store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the menu database. Ping, optional schema migration, pool watching and shutdown
// follow the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-statement writes go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	watcher := &poolWatcher{stats: sqlDB.Stats, logger: params.Logger, interval: poolSampleInterval}
	stopWatching := func() {}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := prepareSchema(ctx, sqlDB, params.Config.Store, params.Logger); err != nil {
				return err
			}

			var watchCtx context.Context
			watchCtx, stopWatching = context.WithCancel(context.Background())
			go watcher.run(watchCtx)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatching()

			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL pool")
		},
	})

	return db, nil
}

// prepareSchema checks the connection and applies pending migrations when the store asks for it.
func prepareSchema(ctx context.Context, sqlDB *sql.DB, store config.StoreConfig, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}
	if !store.AutoMigrate {
		return nil
	}
	if err := migrations.Apply(ctx, sqlDB); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Postgres schema migrated")

	return nil
}

// poolWatcher logs when requests had to wait for a pooled connection between two samples.
type poolWatcher struct {
	stats    func() sql.DBStats
	logger   *slog.Logger
	interval time.Duration
}

func (w *poolWatcher) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	prev := w.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := w.stats()
			w.report(ctx, prev, cur)
			prev = cur
		}
	}
}

// report logs the waits since prev at debug level, or warn once the waiting adds up.
func (w *poolWatcher) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}
