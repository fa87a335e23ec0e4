// Package persistence selects the storage backend named by store.driver and exposes its
// repositories to the fx graph.
package persistence

import (
	"log/slog"
	"strings"

	"menuboard/config"
	"menuboard/internal/domain/constants"
	"menuboard/internal/domain/repository"
	"menuboard/internal/errors"
	"menuboard/internal/infra/persistence/memory"
	"menuboard/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result carries the repositories of the selected backend.
type Result struct {
	fx.Out

	TxManager           repository.TransactionManager
	CategoryRepository  repository.CategoryRepository
	ProductRepository   repository.ProductRepository
	AnalyticsRepository repository.AnalyticsRepository
}

// New builds the repositories for cfg.Store.Driver.
func New(params Params) (Result, error) {
	driver := strings.ToLower(strings.TrimSpace(params.Config.Store.Driver))

	switch driver {
	case constants.StoreDriverMemory:
		params.Logger.Warn("Using in-memory store, data is lost on restart")
		store := memory.NewStore()

		return Result{
			TxManager:           store,
			CategoryRepository:  store,
			ProductRepository:   store,
			AnalyticsRepository: store,
		}, nil
	case constants.StoreDriverPostgres, "":
		if params.Config.Postgres == nil {
			return Result{}, errors.New("postgres configuration is required for the postgres store")
		}

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}

		return Result{
			TxManager:           postgres.NewTransactionManager(db),
			CategoryRepository:  postgres.NewCategoryRepository(db),
			ProductRepository:   postgres.NewProductRepository(db),
			AnalyticsRepository: postgres.NewAnalyticsRepository(db),
		}, nil
	default:
		return Result{}, errors.Errorf("unsupported store driver %q", params.Config.Store.Driver)
	}
}
