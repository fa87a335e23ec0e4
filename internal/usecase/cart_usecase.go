package usecase

import (
	"context"

	"menuboard/internal/domain/entity"

	"github.com/google/uuid"
)

// CartItemInput is one product in a cart. For multiple-type products the quantity is the
// sum of the variant quantities when variants are given.
type CartItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Variants  []entity.VariantSelection
}

// QuoteCartInput is the cart to price. An empty OrderType means local.
type QuoteCartInput struct {
	CustomerName string
	OrderType    entity.OrderType
	Items        []CartItemInput
}

// CartUsecase defines the interface for server-side cart pricing
type CartUsecase interface {
	// QuoteCart prices a cart from current product prices without persisting an order
	QuoteCart(ctx context.Context, input *QuoteCartInput) (*entity.CartQuote, error)
}
