package action

import (
	"context"

	"menuboard/internal/domain/entity"
	"menuboard/internal/usecase"
)

// CartItem is one line of a cart quote request.
type CartItem struct {
	ProductID string                    `json:"productId"`
	Quantity  int                       `json:"quantity"`
	Variants  []entity.VariantSelection `json:"variants"`
}

// CartInput is the body of a cart quote request.
type CartInput struct {
	CustomerName string           `json:"customerName" validate:"max=120"`
	OrderType    entity.OrderType `json:"orderType"`
	Items        []CartItem       `json:"items" validate:"max=100"`
}

var opQuoteCart = operation{name: "quoteCart", key: "quote", failure: "Failed to quote cart."}

// QuoteCart prices a cart from the current product prices.
func (a *Actions) QuoteCart(ctx context.Context, input CartInput) Result[*entity.CartQuote] {
	return run(ctx, a, opQuoteCart, func() (*entity.CartQuote, error) {
		items := make([]usecase.CartItemInput, 0, len(input.Items))
		for _, item := range input.Items {
			items = append(items, usecase.CartItemInput{
				ProductID: parseID(item.ProductID),
				Quantity:  item.Quantity,
				Variants:  item.Variants,
			})
		}

		return a.cart.QuoteCart(ctx, &usecase.QuoteCartInput{
			CustomerName: input.CustomerName,
			OrderType:    input.OrderType,
			Items:        items,
		})
	})
}
