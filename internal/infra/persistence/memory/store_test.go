package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"menuboard/internal/domain/entity"
	"menuboard/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, s *Store, categoryName, productName string) (*entity.Category, *entity.Product) {
	t.Helper()
	ctx := context.Background()

	category := &entity.Category{Name: categoryName}
	require.NoError(t, s.CreateCategory(ctx, category))

	product := &entity.Product{
		Name:       productName,
		Price:      decimal.NewFromInt(5),
		Type:       entity.ProductTypeSingle,
		CategoryID: category.ID,
	}
	require.NoError(t, s.CreateProduct(ctx, product))

	return category, product
}

func TestStore_CategoryConstraints(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	category, _ := seedProduct(t, s, "DRINKS", "Cola")

	assert.ErrorIs(t, s.CreateCategory(ctx, &entity.Category{Name: "DRINKS"}), repository.ErrDuplicateCategory)
	assert.ErrorIs(t, s.DeleteCategory(ctx, category.ID), repository.ErrCategoryInUse)
	assert.ErrorIs(t, s.DeleteCategory(ctx, uuid.New()), repository.ErrCategoryNotFound)
	assert.ErrorIs(t, s.UpdateCategory(ctx, &entity.Category{ID: uuid.New(), Name: "X"}), repository.ErrCategoryNotFound)

	other := &entity.Category{Name: "FOOD"}
	require.NoError(t, s.CreateCategory(ctx, other))
	assert.ErrorIs(t, s.UpdateCategory(ctx, &entity.Category{ID: other.ID, Name: "DRINKS"}), repository.ErrDuplicateCategory)
	// Renaming to its own name is not a conflict.
	assert.NoError(t, s.UpdateCategory(ctx, &entity.Category{ID: other.ID, Name: "FOOD"}))

	count, err := s.CountProductsByCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestStore_ListCategoriesOrdering(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	for _, name := range []string{"bowls", "PROMOS", "Nori", "HAND ROLLS X2"} {
		require.NoError(t, s.CreateCategory(ctx, &entity.Category{Name: name}))
	}

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"HAND ROLLS X2", "Nori", "PROMOS", "bowls"}, names)
}

func TestStore_ProductConstraints(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	category, product := seedProduct(t, s, "DRINKS", "Cola")

	dup := &entity.Product{Name: "Cola", Type: entity.ProductTypeSingle, CategoryID: category.ID}
	assert.ErrorIs(t, s.CreateProduct(ctx, dup), repository.ErrDuplicateProduct)

	orphan := &entity.Product{Name: "Ghost", Type: entity.ProductTypeSingle, CategoryID: uuid.New()}
	assert.ErrorIs(t, s.CreateProduct(ctx, orphan), repository.ErrProductCategoryMissing)

	moved := *product
	moved.CategoryID = uuid.New()
	assert.ErrorIs(t, s.UpdateProduct(ctx, &moved), repository.ErrProductCategoryMissing)

	_, err := s.CreateVariants(ctx, uuid.New(), []string{"X"})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	assert.ErrorIs(t, s.DeleteProduct(ctx, uuid.New()), repository.ErrProductNotFound)
}

func TestStore_ReturnedEntitiesAreCopies(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, product := seedProduct(t, s, "DRINKS", "Cola")
	_, err := s.CreateVariants(ctx, product.ID, []string{"Zero"})
	require.NoError(t, err)

	found, err := s.FindProductByID(ctx, product.ID)
	require.NoError(t, err)
	found.Name = "Changed"
	found.Variants[0].Name = "Changed"

	again, err := s.FindProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cola", again.Name)
	assert.Equal(t, []string{"Zero"}, again.VariantNames())
}

func TestStore_ExecuteRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, product := seedProduct(t, s, "DRINKS", "Cola")
	_, err := s.CreateVariants(ctx, product.ID, []string{"Zero", "Light"})
	require.NoError(t, err)

	failure := errors.New("abort")
	err = s.Execute(ctx, func(factory repository.RepositoryFactory) error {
		productRepo := factory.NewProductRepository()
		if err := productRepo.DeleteVariantsByProduct(ctx, product.ID); err != nil {
			return err
		}
		if _, err := productRepo.CreateVariants(ctx, product.ID, []string{"Cherry"}); err != nil {
			return err
		}

		return failure
	})
	assert.ErrorIs(t, err, failure)

	reloaded, err := s.FindProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Zero", "Light"}, reloaded.VariantNames())
}

func TestStore_ExecuteRollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, product := seedProduct(t, s, "DRINKS", "Cola")

	assert.Panics(t, func() {
		_ = s.Execute(ctx, func(factory repository.RepositoryFactory) error {
			_ = factory.NewProductRepository().DeleteProduct(ctx, product.ID)
			panic("boom")
		})
	})

	_, err := s.FindProductByID(ctx, product.ID)
	assert.NoError(t, err)

	// The write lock was released.
	assert.NoError(t, s.CreateCategory(ctx, &entity.Category{Name: "AFTER"}))
}

func TestStore_ExecuteCommits(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, product := seedProduct(t, s, "DRINKS", "Cola")

	err := s.Execute(ctx, func(factory repository.RepositoryFactory) error {
		productRepo := factory.NewProductRepository()
		if err := productRepo.DeleteVariantsByProduct(ctx, product.ID); err != nil {
			return err
		}

		return productRepo.DeleteProduct(ctx, product.ID)
	})
	require.NoError(t, err)

	_, err = s.FindProductByID(ctx, product.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestStore_ExecuteHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := NewStore().Execute(ctx, func(repository.RepositoryFactory) error {
		called = true

		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestStore_Analytics(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, a := seedProduct(t, s, "DRINKS", "Cola")
	b := &entity.Product{Name: "Tea", Price: decimal.NewFromInt(3), Type: entity.ProductTypeSingle, CategoryID: a.CategoryID}
	require.NoError(t, s.CreateProduct(ctx, b))

	record := func(productID uuid.UUID, action entity.ActionType, quantity *int) {
		require.NoError(t, s.CreateEvent(ctx, &entity.AnalyticsEvent{ProductID: productID, ActionType: action, Quantity: quantity}))
	}
	three := 3
	record(a.ID, entity.ActionTypeView, nil)
	record(a.ID, entity.ActionTypeView, nil)
	record(b.ID, entity.ActionTypeView, nil)
	record(b.ID, entity.ActionTypeAddToCart, &three)
	record(b.ID, entity.ActionTypeAddToCart, &three)

	err := s.CreateEvent(ctx, &entity.AnalyticsEvent{ProductID: uuid.New(), ActionType: entity.ActionTypeClick})
	assert.ErrorIs(t, err, repository.ErrAnalyticsProductNotFound)

	views, err := s.TopProductsByCount(ctx, entity.ActionTypeView, entity.AnalyticsWindow{}, 5)
	require.NoError(t, err)
	assert.Equal(t, []entity.ProductActionTotal{{ProductID: a.ID, Total: 2}, {ProductID: b.ID, Total: 1}}, views)

	added, err := s.TopProductsByQuantity(ctx, entity.ActionTypeAddToCart, entity.AnalyticsWindow{}, 5)
	require.NoError(t, err)
	assert.Equal(t, []entity.ProductActionTotal{{ProductID: b.ID, Total: 6}}, added)

	future := time.Now().Add(time.Hour)
	none, err := s.TopProductsByCount(ctx, entity.ActionTypeView, entity.AnalyticsWindow{Since: &future}, 5)
	require.NoError(t, err)
	assert.Empty(t, none)

	// Events survive product deletion.
	require.NoError(t, s.DeleteProduct(ctx, b.ID))
	added, err = s.TopProductsByQuantity(ctx, entity.ActionTypeAddToCart, entity.AnalyticsWindow{}, 5)
	require.NoError(t, err)
	assert.Len(t, added, 1)
}

func TestStore_RankingTiesAndLimit(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	category := &entity.Category{Name: "ALL"}
	require.NoError(t, s.CreateCategory(ctx, category))

	ids := make([]uuid.UUID, 0, 7)
	for i := range 7 {
		p := &entity.Product{Name: string(rune('A' + i)), Type: entity.ProductTypeSingle, CategoryID: category.ID}
		require.NoError(t, s.CreateProduct(ctx, p))
		require.NoError(t, s.CreateEvent(ctx, &entity.AnalyticsEvent{ProductID: p.ID, ActionType: entity.ActionTypeClick}))
		ids = append(ids, p.ID)
	}

	ranked, err := s.TopProductsByCount(ctx, entity.ActionTypeClick, entity.AnalyticsWindow{}, entity.TopProductsLimit)
	require.NoError(t, err)
	require.Len(t, ranked, entity.TopProductsLimit)
	for i := 1; i < len(ranked); i++ {
		assert.Negative(t, compareIDs(ranked[i-1].ProductID, ranked[i].ProductID))
	}
}

func TestStore_ConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_, product := seedProduct(t, s, "DRINKS", "Cola")

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.CreateEvent(ctx, &entity.AnalyticsEvent{ProductID: product.ID, ActionType: entity.ActionTypeView})
		}()
		go func() {
			defer wg.Done()
			_ = s.Execute(ctx, func(factory repository.RepositoryFactory) error {
				productRepo := factory.NewProductRepository()
				if err := productRepo.DeleteVariantsByProduct(ctx, product.ID); err != nil {
					return err
				}
				_, err := productRepo.CreateVariants(ctx, product.ID, []string{"A", "B"})

				return err
			})
		}()
	}
	wg.Wait()

	views, err := s.TopProductsByCount(ctx, entity.ActionTypeView, entity.AnalyticsWindow{}, 5)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(20), views[0].Total)

	reloaded, err := s.FindProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, reloaded.VariantNames())
}
