package action

import (
	"context"

	"menuboard/internal/domain/entity"
	domainerrors "menuboard/internal/domain/errors"
	"menuboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput is the body of a product create request.
type ProductInput struct {
	Name        string             `json:"name" validate:"max=255"`
	Description *string            `json:"description"`
	Price       *decimal.Decimal   `json:"price"`
	Image       *string            `json:"image" validate:"omitempty,max=2048"`
	Type        entity.ProductType `json:"type"`
	CategoryID  string             `json:"categoryId"`
	Variants    []string           `json:"variants" validate:"dive,max=255"`
}

// ProductPatch is the body of a product update request. Absent fields keep their value.
type ProductPatch struct {
	Name        *string             `json:"name" validate:"omitempty,max=255"`
	Description *string             `json:"description"`
	Price       *decimal.Decimal    `json:"price"`
	Image       *string             `json:"image" validate:"omitempty,max=2048"`
	Type        *entity.ProductType `json:"type"`
	CategoryID  *string             `json:"categoryId"`
	Variants    *[]string           `json:"variants"`
}

var (
	opCreateProduct = operation{name: "createProduct", key: "product", failure: "Failed to create product.", created: true}
	opUpdateProduct = operation{name: "updateProduct", key: "product", failure: "Failed to update product."}
	opDeleteProduct = operation{name: "deleteProduct", key: "message", failure: "Failed to delete product."}
	opGetProduct    = operation{name: "getProduct", key: "product", failure: "Failed to load product."}
	opListProducts  = operation{name: "listProducts", key: "products", failure: "Failed to load products."}
)

// CreateProduct stores a product and its variants in one transaction.
func (a *Actions) CreateProduct(ctx context.Context, input ProductInput) Result[*entity.Product] {
	return run(ctx, a, opCreateProduct, func() (*entity.Product, error) {
		return a.products.CreateProduct(ctx, &usecase.CreateProductInput{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Image:       input.Image,
			Type:        input.Type,
			CategoryID:  parseID(input.CategoryID),
			Variants:    input.Variants,
		})
	})
}

// UpdateProduct applies patch to the product identified by id.
func (a *Actions) UpdateProduct(ctx context.Context, id string, patch ProductPatch) Result[*entity.Product] {
	return run(ctx, a, opUpdateProduct, func() (*entity.Product, error) {
		return a.products.UpdateProduct(ctx, parseID(id), &usecase.UpdateProductInput{
			Name:        patch.Name,
			Description: patch.Description,
			Price:       patch.Price,
			Image:       patch.Image,
			Type:        patch.Type,
			CategoryID:  parseOptionalID(patch.CategoryID),
			Variants:    patch.Variants,
		})
	})
}

// DeleteProduct removes a product together with its variants.
func (a *Actions) DeleteProduct(ctx context.Context, id string) Result[string] {
	return run(ctx, a, opDeleteProduct, func() (string, error) {
		if err := a.products.DeleteProduct(ctx, parseID(id)); err != nil {
			return "", err
		}

		return "Product deleted successfully.", nil
	})
}

// GetProduct loads one product with its variants.
func (a *Actions) GetProduct(ctx context.Context, id string) Result[*entity.Product] {
	return run(ctx, a, opGetProduct, func() (*entity.Product, error) {
		return a.products.GetProduct(ctx, parseID(id))
	})
}

// ListProducts returns products ordered by name. A non-empty categoryID limits the list to
// that category; a malformed one is rejected.
func (a *Actions) ListProducts(ctx context.Context, categoryID string) Result[[]*entity.Product] {
	return run(ctx, a, opListProducts, func() ([]*entity.Product, error) {
		var filter *uuid.UUID
		switch id := parseID(categoryID); id {
		case uuid.Nil:
		case unknownID:
			return nil, domainerrors.ErrValidationFailed
		default:
			filter = &id
		}

		products, err := a.products.ListProducts(ctx, filter)
		if products == nil && err == nil {
			products = []*entity.Product{}
		}

		return products, err
	})
}
