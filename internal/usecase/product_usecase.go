package usecase

import (
	"context"

	"menuboard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput holds the fields of a new product.
// A nil Price is rejected as invalid.
type CreateProductInput struct {
	Name        string
	Description *string
	Price       *decimal.Decimal
	Image       *string
	Type        entity.ProductType
	CategoryID  uuid.UUID
	Variants    []string
}

// UpdateProductInput is a partial update. Nil fields keep their stored value.
// A non-nil Variants replaces the whole variant set, even when empty.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Image       *string
	Type        *entity.ProductType
	CategoryID  *uuid.UUID
	Variants    *[]string
}

// ProductUsecase defines the interface for product and variant management
type ProductUsecase interface {
	// CreateProduct validates and stores a product with its variants in one transaction
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// GetProduct retrieves a product with its variants
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts returns products ordered by name, optionally limited to one category
	ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Product, error)

	// UpdateProduct applies a partial update and reconciles variants in one transaction
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product and its variants in one transaction
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
