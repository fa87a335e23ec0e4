package main

import (
	"context"
	"log/slog"
	"os"

	"menuboard/config"
	"menuboard/internal/action"
	"menuboard/internal/delivery"
	"menuboard/internal/delivery/api"
	apimiddleware "menuboard/internal/delivery/api/middleware"
	"menuboard/internal/delivery/api/router"
	"menuboard/internal/delivery/api/router/handler"
	"menuboard/internal/domain/service"
	"menuboard/internal/infra/auth"
	"menuboard/internal/infra/cache"
	logs "menuboard/internal/infra/log"
	"menuboard/internal/infra/metrics"
	"menuboard/internal/infra/persistence"
	"menuboard/internal/infra/pubsub"
	"menuboard/internal/infra/qrcode"
	"menuboard/internal/infra/realtime"
	"menuboard/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			persistence.New,
			cache.New,
			fx.Annotate(
				metrics.New,
				fx.As(new(action.Recorder)),
				fx.As(new(realtime.ClientCounter)),
				fx.As(new(router.MetricsEndpoint)),
				fx.As(new(apimiddleware.HTTPObserver)),
			),
			realtime.New,
			func(hub *realtime.Hub) service.MenuNotifier { return hub },
		),
		pubsub.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			qrcode.NewFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCategoryService,
			impl.NewProductService,
			impl.NewAnalyticsService,
			impl.NewMenuService,
			impl.NewCartService,
			action.New,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCategoryHandler,
			handler.NewProductHandler,
			handler.NewAnalyticsHandler,
			handler.NewMenuHandler,
			handler.NewCartHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
