//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"menuboard/internal/domain/entity"
	"menuboard/internal/domain/repository"
	"menuboard/internal/infra/persistence/postgres/migrations"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("menuboard"),
		tcpostgres.WithUsername("menuboard"),
		tcpostgres.WithPassword("menuboard"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, migrations.Apply(ctx, sqlDB))
	// Applying twice must be harmless.
	require.NoError(t, migrations.Apply(ctx, sqlDB))

	return db
}

func TestIntegration_MenuLifecycle(t *testing.T) {
	db := setupIntegrationDB(t)
	ctx := context.Background()

	categoryRepo := NewCategoryRepository(db)
	productRepo := NewProductRepository(db)
	analyticsRepo := NewAnalyticsRepository(db)
	tm := NewTransactionManager(db)

	drinks := &entity.Category{Name: "DRINKS"}
	require.NoError(t, categoryRepo.CreateCategory(ctx, drinks))
	assert.ErrorIs(t, categoryRepo.CreateCategory(ctx, &entity.Category{Name: "DRINKS"}), repository.ErrDuplicateCategory)

	cola := &entity.Product{Name: "Cola", Price: decimal.NewFromInt(5), Type: entity.ProductTypeSingle, CategoryID: drinks.ID}
	require.NoError(t, productRepo.CreateProduct(ctx, cola))

	dup := &entity.Product{Name: "Cola", Price: decimal.NewFromInt(6), Type: entity.ProductTypeSingle, CategoryID: drinks.ID}
	assert.ErrorIs(t, productRepo.CreateProduct(ctx, dup), repository.ErrDuplicateProduct)

	orphan := &entity.Product{Name: "Ghost", Price: decimal.Zero, Type: entity.ProductTypeSingle, CategoryID: uuid.New()}
	assert.ErrorIs(t, productRepo.CreateProduct(ctx, orphan), repository.ErrProductCategoryMissing)

	assert.ErrorIs(t, categoryRepo.DeleteCategory(ctx, drinks.ID), repository.ErrCategoryInUse)

	three := 3
	for range 2 {
		require.NoError(t, analyticsRepo.CreateEvent(ctx, &entity.AnalyticsEvent{
			ProductID: cola.ID, ActionType: entity.ActionTypeAddToCart, Quantity: &three,
		}))
	}
	assert.ErrorIs(t, analyticsRepo.CreateEvent(ctx, &entity.AnalyticsEvent{
		ProductID: uuid.New(), ActionType: entity.ActionTypeView,
	}), repository.ErrAnalyticsProductNotFound)

	totals, err := analyticsRepo.TopProductsByQuantity(ctx, entity.ActionTypeAddToCart, entity.AnalyticsWindow{}, entity.TopProductsLimit)
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, int64(6), totals[0].Total)

	// A failed transaction leaves no variants behind.
	failure := errors.New("abort")
	err = tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.NewProductRepository().CreateVariants(ctx, cola.ID, []string{"Zero", "Light"}); err != nil {
			return err
		}

		return failure
	})
	assert.ErrorIs(t, err, failure)

	reloaded, err := productRepo.FindProductByID(ctx, cola.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Variants)

	require.NoError(t, productRepo.DeleteProduct(ctx, cola.ID))
	require.NoError(t, categoryRepo.DeleteCategory(ctx, drinks.ID))

	// Events outlive the product.
	totals, err = analyticsRepo.TopProductsByQuantity(ctx, entity.ActionTypeAddToCart, entity.AnalyticsWindow{}, entity.TopProductsLimit)
	require.NoError(t, err)
	assert.Len(t, totals, 1)

	names, err := productRepo.FindProductNames(ctx, []uuid.UUID{cola.ID})
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestIntegration_CategoryOrderingIsByteWise(t *testing.T) {
	db := setupIntegrationDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(db)

	for _, name := range []string{"bowls", "PROMOS", "Nori", "HAND ROLLS X2"} {
		require.NoError(t, repo.CreateCategory(ctx, &entity.Category{Name: name}))
	}

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"HAND ROLLS X2", "Nori", "PROMOS", "bowls"}, names)
}
