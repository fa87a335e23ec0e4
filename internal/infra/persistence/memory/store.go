// Package memory is an in-process implementation of the repositories and TransactionManager.
// It enforces the same uniqueness and reference rules as the SQL schema and is meant for
// tests and local development.
package memory

import (
	"context"
	"sync"

	"menuboard/internal/domain/entity"
	"menuboard/internal/domain/repository"

	"github.com/google/uuid"
)

var (
	_ repository.CategoryRepository  = (*Store)(nil)
	_ repository.ProductRepository   = (*Store)(nil)
	_ repository.AnalyticsRepository = (*Store)(nil)
	_ repository.TransactionManager  = (*Store)(nil)
	_ repository.RepositoryFactory   = (*dataset)(nil)
)

// Store guards a dataset. Writers are serialised by writeMu; a transaction works on a
// clone and swaps it in on success, so readers never observe a half-applied change.
type Store struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	data    *dataset
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: newDataset()}
}

func (s *Store) read(fn func(d *dataset) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.data)
}

func (s *Store) write(fn func(d *dataset) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.data)
}

// Execute runs fn against a private copy of the data and publishes it only if fn succeeds.
// A panic in fn discards the copy and is re-raised.
func (s *Store) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	working := s.data.clone()
	s.mu.RUnlock()

	if err := fn(working); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = working
	s.mu.Unlock()

	return nil
}

// Categories

func (s *Store) CreateCategory(ctx context.Context, category *entity.Category) error {
	return s.write(func(d *dataset) error { return d.CreateCategory(ctx, category) })
}

func (s *Store) FindCategoryByID(ctx context.Context, id uuid.UUID) (category *entity.Category, err error) {
	err = s.read(func(d *dataset) error {
		category, err = d.FindCategoryByID(ctx, id)

		return err
	})

	return category, err
}

func (s *Store) ListCategories(ctx context.Context) (categories []*entity.Category, err error) {
	err = s.read(func(d *dataset) error {
		categories, err = d.ListCategories(ctx)

		return err
	})

	return categories, err
}

func (s *Store) UpdateCategory(ctx context.Context, category *entity.Category) error {
	return s.write(func(d *dataset) error { return d.UpdateCategory(ctx, category) })
}

func (s *Store) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.write(func(d *dataset) error { return d.DeleteCategory(ctx, id) })
}

func (s *Store) CountProductsByCategory(ctx context.Context, id uuid.UUID) (count int64, err error) {
	err = s.read(func(d *dataset) error {
		count, err = d.CountProductsByCategory(ctx, id)

		return err
	})

	return count, err
}

// Products

func (s *Store) CreateProduct(ctx context.Context, product *entity.Product) error {
	return s.write(func(d *dataset) error { return d.CreateProduct(ctx, product) })
}

func (s *Store) FindProductByID(ctx context.Context, id uuid.UUID) (product *entity.Product, err error) {
	err = s.read(func(d *dataset) error {
		product, err = d.FindProductByID(ctx, id)

		return err
	})

	return product, err
}

func (s *Store) ListProducts(ctx context.Context, categoryID *uuid.UUID) (products []*entity.Product, err error) {
	err = s.read(func(d *dataset) error {
		products, err = d.ListProducts(ctx, categoryID)

		return err
	})

	return products, err
}

func (s *Store) FindProductNames(ctx context.Context, ids []uuid.UUID) (names map[uuid.UUID]string, err error) {
	err = s.read(func(d *dataset) error {
		names, err = d.FindProductNames(ctx, ids)

		return err
	})

	return names, err
}

func (s *Store) UpdateProduct(ctx context.Context, product *entity.Product) error {
	return s.write(func(d *dataset) error { return d.UpdateProduct(ctx, product) })
}

func (s *Store) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.write(func(d *dataset) error { return d.DeleteProduct(ctx, id) })
}

func (s *Store) CreateVariants(ctx context.Context, productID uuid.UUID, names []string) (variants []*entity.ProductVariant, err error) {
	err = s.write(func(d *dataset) error {
		variants, err = d.CreateVariants(ctx, productID, names)

		return err
	})

	return variants, err
}

func (s *Store) DeleteVariantsByProduct(ctx context.Context, productID uuid.UUID) error {
	return s.write(func(d *dataset) error { return d.DeleteVariantsByProduct(ctx, productID) })
}

// Analytics

func (s *Store) CreateEvent(ctx context.Context, event *entity.AnalyticsEvent) error {
	return s.write(func(d *dataset) error { return d.CreateEvent(ctx, event) })
}

func (s *Store) TopProductsByCount(
	ctx context.Context,
	action entity.ActionType,
	window entity.AnalyticsWindow,
	limit int,
) (totals []entity.ProductActionTotal, err error) {
	err = s.read(func(d *dataset) error {
		totals, err = d.TopProductsByCount(ctx, action, window, limit)

		return err
	})

	return totals, err
}

func (s *Store) TopProductsByQuantity(
	ctx context.Context,
	action entity.ActionType,
	window entity.AnalyticsWindow,
	limit int,
) (totals []entity.ProductActionTotal, err error) {
	err = s.read(func(d *dataset) error {
		totals, err = d.TopProductsByQuantity(ctx, action, window, limit)

		return err
	})

	return totals, err
}
