package impl

import (
	"context"
	"log/slog"

	"menuboard/internal/domain/service"

	"github.com/google/uuid"
)

// menuChangePublisher runs after a committed menu mutation: it drops the cached public menu
// and tells live clients to refetch. Both steps are best-effort.
type menuChangePublisher struct {
	cache    service.MenuCache
	notifier service.MenuNotifier
}

func (p menuChangePublisher) publish(ctx context.Context, logger *slog.Logger, kind, action string, id uuid.UUID) {
	if p.cache != nil {
		if err := p.cache.Invalidate(ctx); err != nil {
			logger.Warn("Failed to invalidate menu cache",
				slog.String("kind", kind),
				slog.String("action", action),
				slog.Any("error", err),
			)
		}
	}

	if p.notifier != nil {
		p.notifier.NotifyMenuChanged(ctx, service.MenuChange{
			Kind:   kind,
			Action: action,
			ID:     id,
		})
	}
}
