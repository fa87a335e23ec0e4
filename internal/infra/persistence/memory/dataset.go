package memory

import (
	"bytes"
	"cmp"
	"context"
	"maps"
	"slices"
	"time"

	"menuboard/internal/domain/entity"
	"menuboard/internal/domain/repository"

	"github.com/google/uuid"
)

// dataset is the unguarded state behind a Store. It implements every repository directly
// and doubles as the RepositoryFactory handed to transactions.
type dataset struct {
	categories map[uuid.UUID]entity.Category
	products   map[uuid.UUID]entity.Product
	variants   map[uuid.UUID][]entity.ProductVariant
	events     []entity.AnalyticsEvent
}

func newDataset() *dataset {
	return &dataset{
		categories: make(map[uuid.UUID]entity.Category),
		products:   make(map[uuid.UUID]entity.Product),
		variants:   make(map[uuid.UUID][]entity.ProductVariant),
	}
}

func (d *dataset) clone() *dataset {
	variants := make(map[uuid.UUID][]entity.ProductVariant, len(d.variants))
	for productID, vs := range d.variants {
		variants[productID] = slices.Clone(vs)
	}

	return &dataset{
		categories: maps.Clone(d.categories),
		products:   maps.Clone(d.products),
		variants:   variants,
		events:     slices.Clone(d.events),
	}
}

func (d *dataset) NewCategoryRepository() repository.CategoryRepository {
	return d
}

func (d *dataset) NewProductRepository() repository.ProductRepository {
	return d
}

func (d *dataset) NewAnalyticsRepository() repository.AnalyticsRepository {
	return d
}

func now() time.Time {
	return time.Now().UTC()
}

func compareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

// --- Categories ---

func (d *dataset) categoryNameTaken(name string, except uuid.UUID) bool {
	for id, c := range d.categories {
		if id != except && c.Name == name {
			return true
		}
	}

	return false
}

func (d *dataset) CreateCategory(_ context.Context, category *entity.Category) error {
	if d.categoryNameTaken(category.Name, uuid.Nil) {
		return repository.ErrDuplicateCategory
	}
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}

	ts := now()
	category.CreatedAt = ts
	category.UpdatedAt = ts
	d.categories[category.ID] = *category

	return nil
}

func (d *dataset) FindCategoryByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	c, ok := d.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}

	return &c, nil
}

func (d *dataset) ListCategories(_ context.Context) ([]*entity.Category, error) {
	categories := make([]*entity.Category, 0, len(d.categories))
	for _, c := range d.categories {
		categories = append(categories, &c)
	}

	slices.SortFunc(categories, func(a, b *entity.Category) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), compareIDs(a.ID, b.ID))
	})

	return categories, nil
}

func (d *dataset) UpdateCategory(_ context.Context, category *entity.Category) error {
	stored, ok := d.categories[category.ID]
	if !ok {
		return repository.ErrCategoryNotFound
	}
	if d.categoryNameTaken(category.Name, category.ID) {
		return repository.ErrDuplicateCategory
	}

	stored.Name = category.Name
	stored.UpdatedAt = now()
	d.categories[category.ID] = stored

	return nil
}

func (d *dataset) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, ok := d.categories[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	if count, _ := d.CountProductsByCategory(ctx, id); count > 0 {
		return repository.ErrCategoryInUse
	}

	delete(d.categories, id)

	return nil
}

func (d *dataset) CountProductsByCategory(_ context.Context, id uuid.UUID) (int64, error) {
	var count int64
	for _, p := range d.products {
		if p.CategoryID == id {
			count++
		}
	}

	return count, nil
}

// --- Products ---

func (d *dataset) productNameTaken(name string, categoryID, except uuid.UUID) bool {
	for id, p := range d.products {
		if id != except && p.CategoryID == categoryID && p.Name == name {
			return true
		}
	}

	return false
}

func (d *dataset) CreateProduct(_ context.Context, product *entity.Product) error {
	if _, ok := d.categories[product.CategoryID]; !ok {
		return repository.ErrProductCategoryMissing
	}
	if d.productNameTaken(product.Name, product.CategoryID, uuid.Nil) {
		return repository.ErrDuplicateProduct
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}

	ts := now()
	product.CreatedAt = ts
	product.UpdatedAt = ts

	stored := *product
	stored.Variants = nil
	d.products[product.ID] = stored

	return nil
}

func (d *dataset) withVariants(p entity.Product) *entity.Product {
	stored := d.variants[p.ID]
	p.Variants = make([]*entity.ProductVariant, 0, len(stored))
	for _, v := range stored {
		p.Variants = append(p.Variants, &v)
	}

	return &p
}

func (d *dataset) FindProductByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := d.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return d.withVariants(p), nil
}

func (d *dataset) ListProducts(_ context.Context, categoryID *uuid.UUID) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(d.products))
	for _, p := range d.products {
		if categoryID != nil && p.CategoryID != *categoryID {
			continue
		}
		products = append(products, d.withVariants(p))
	}

	slices.SortFunc(products, func(a, b *entity.Product) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), compareIDs(a.ID, b.ID))
	})

	return products, nil
}

func (d *dataset) FindProductNames(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	for _, id := range ids {
		if p, ok := d.products[id]; ok {
			names[id] = p.Name
		}
	}

	return names, nil
}

func (d *dataset) UpdateProduct(_ context.Context, product *entity.Product) error {
	stored, ok := d.products[product.ID]
	if !ok {
		return repository.ErrProductNotFound
	}
	if _, ok := d.categories[product.CategoryID]; !ok {
		return repository.ErrProductCategoryMissing
	}
	if d.productNameTaken(product.Name, product.CategoryID, product.ID) {
		return repository.ErrDuplicateProduct
	}

	stored.Name = product.Name
	stored.Description = product.Description
	stored.Price = product.Price
	stored.Image = product.Image
	stored.Type = product.Type
	stored.CategoryID = product.CategoryID
	stored.UpdatedAt = now()
	d.products[product.ID] = stored

	return nil
}

func (d *dataset) DeleteProduct(_ context.Context, id uuid.UUID) error {
	if _, ok := d.products[id]; !ok {
		return repository.ErrProductNotFound
	}

	delete(d.products, id)
	delete(d.variants, id)

	return nil
}

func (d *dataset) CreateVariants(_ context.Context, productID uuid.UUID, names []string) ([]*entity.ProductVariant, error) {
	if _, ok := d.products[productID]; !ok {
		return nil, repository.ErrProductNotFound
	}

	created := make([]*entity.ProductVariant, 0, len(names))
	for _, name := range names {
		v := entity.ProductVariant{ID: uuid.New(), Name: name, ProductID: productID}
		d.variants[productID] = append(d.variants[productID], v)
		created = append(created, &v)
	}

	return created, nil
}

func (d *dataset) DeleteVariantsByProduct(_ context.Context, productID uuid.UUID) error {
	delete(d.variants, productID)

	return nil
}

// --- Analytics ---

func (d *dataset) CreateEvent(_ context.Context, event *entity.AnalyticsEvent) error {
	if _, ok := d.products[event.ProductID]; !ok {
		return repository.ErrAnalyticsProductNotFound
	}
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now()
	}

	stored := *event
	if event.Quantity != nil {
		q := *event.Quantity
		stored.Quantity = &q
	}
	d.events = append(d.events, stored)

	return nil
}

func (d *dataset) TopProductsByCount(
	_ context.Context,
	action entity.ActionType,
	window entity.AnalyticsWindow,
	limit int,
) ([]entity.ProductActionTotal, error) {
	return d.rank(action, window, limit, func(entity.AnalyticsEvent) int64 { return 1 }), nil
}

func (d *dataset) TopProductsByQuantity(
	_ context.Context,
	action entity.ActionType,
	window entity.AnalyticsWindow,
	limit int,
) ([]entity.ProductActionTotal, error) {
	return d.rank(action, window, limit, func(e entity.AnalyticsEvent) int64 {
		if e.Quantity == nil {
			return 0
		}

		return int64(*e.Quantity)
	}), nil
}

func (d *dataset) rank(
	action entity.ActionType,
	window entity.AnalyticsWindow,
	limit int,
	weight func(entity.AnalyticsEvent) int64,
) []entity.ProductActionTotal {
	totals := make(map[uuid.UUID]int64)
	for _, e := range d.events {
		if e.ActionType != action || !window.Contains(e.CreatedAt) {
			continue
		}
		totals[e.ProductID] += weight(e)
	}

	ranked := make([]entity.ProductActionTotal, 0, len(totals))
	for productID, total := range totals {
		ranked = append(ranked, entity.ProductActionTotal{ProductID: productID, Total: total})
	}

	slices.SortFunc(ranked, func(a, b entity.ProductActionTotal) int {
		return cmp.Or(cmp.Compare(b.Total, a.Total), compareIDs(a.ProductID, b.ProductID))
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
