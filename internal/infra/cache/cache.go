// Package cache keeps the rendered public menu between menu mutations.
package cache

import (
	"context"
	"log/slog"

	"menuboard/config"
	"menuboard/internal/domain/entity"
	"menuboard/internal/domain/lifecycle"
	"menuboard/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the menu cache, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis-backed menu cache, or a no-op cache when Redis is disabled.
func New(params Params) (service.MenuCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Redis disabled, public menu is not cached")

		return noopCache{}, nil
	}
	if cfg.Addr == "" {
		return nil, errors.New("redis address is required when redis is enabled")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			// The menu is served from the store while Redis is unreachable.
			if err := client.Ping(pingCtx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, menu cache will retry per request",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisMenuCache(client, cfg.KeyPrefix, cfg.MenuTTL), nil
}

type noopCache struct{}

func (noopCache) Generation(context.Context) (int64, error) {
	return 0, nil
}

func (noopCache) GetPublicMenu(context.Context, int64) (*entity.PublicMenu, bool, error) {
	return nil, false, nil
}

func (noopCache) SetPublicMenu(context.Context, int64, *entity.PublicMenu) error {
	return nil
}

func (noopCache) Invalidate(context.Context) error {
	return nil
}
