// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderType is how the customer will receive the order.
type OrderType string

const (
	OrderTypeLocal    OrderType = "local"
	OrderTypeTakeaway OrderType = "takeaway"
)

// IsValid checks if the OrderType is a valid value.
func (o OrderType) IsValid() bool {
	switch o {
	case OrderTypeLocal, OrderTypeTakeaway:
		return true
	default:
		return false
	}
}

// VariantSelection is a per-variant quantity chosen for a multiple-type product.
type VariantSelection struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CartQuoteLine is a priced cart line.
type CartQuoteLine struct {
	ProductID   uuid.UUID          `json:"productId"`
	ProductName string             `json:"productName"`
	UnitPrice   decimal.Decimal    `json:"unitPrice"`
	Quantity    int                `json:"quantity"`
	Variants    []VariantSelection `json:"variants,omitempty"`
	LineTotal   decimal.Decimal    `json:"lineTotal"`
}

// CartQuote is a server-side total for a cart. It is never persisted.
type CartQuote struct {
	CustomerName   string          `json:"customerName,omitempty"`
	OrderType      OrderType       `json:"orderType"`
	Lines          []CartQuoteLine `json:"lines"`
	ItemCount      int             `json:"itemCount"`
	Total          decimal.Decimal `json:"total"`
	FormattedTotal string          `json:"formattedTotal"`
}
