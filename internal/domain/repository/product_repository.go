// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"menuboard/internal/domain/entity"
	"menuboard/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateProduct is returned when a product name is already used in the category.
	ErrDuplicateProduct = errors.New("product already exists in category")
	// ErrProductCategoryMissing is returned when the referenced category does not exist.
	ErrProductCategoryMissing = errors.New("product category does not exist")
)

// ProductRepository defines the interface for product and variant database operations.
// Variants are only ever written through this repository so that they share the caller's transaction.
type ProductRepository interface {
	// CreateProduct persists a product row. Variants on the entity are ignored.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product with its variants.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts returns products ordered by name with their variants.
	// A nil categoryID lists every product.
	ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Product, error)

	// FindProductNames resolves names for the given IDs in one query. Missing IDs are absent from the map.
	FindProductNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)

	// UpdateProduct overwrites the product's scalar fields. Variants on the entity are ignored.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a product row.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// CreateVariants inserts one variant per name for the product, preserving order.
	CreateVariants(ctx context.Context, productID uuid.UUID, names []string) ([]*entity.ProductVariant, error)

	// DeleteVariantsByProduct removes every variant of the product.
	DeleteVariantsByProduct(ctx context.Context, productID uuid.UUID) error
}
