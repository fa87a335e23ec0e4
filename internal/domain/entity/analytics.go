// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UnknownProductName labels ranked products that no longer exist.
const UnknownProductName = "Unknown Product"

// TopProductsLimit is the size of each ranked list in the analytics summary.
const TopProductsLimit = 5

// ActionType is the kind of customer interaction recorded for a product.
type ActionType string

const (
	ActionTypeView      ActionType = "VIEW"
	ActionTypeClick     ActionType = "CLICK"
	ActionTypeAddToCart ActionType = "ADD_TO_CART"
)

// String returns the string representation of the ActionType.
func (a ActionType) String() string {
	return string(a)
}

// IsValid checks if the ActionType is a valid value.
func (a ActionType) IsValid() bool {
	switch a {
	case ActionTypeView, ActionTypeClick, ActionTypeAddToCart:
		return true
	default:
		return false
	}
}

// AnalyticsEvent is an append-only record of one customer interaction.
// Quantity is only set for ADD_TO_CART events.
type AnalyticsEvent struct {
	ID         uuid.UUID  `json:"id"`
	ProductID  uuid.UUID  `json:"productId"`
	ActionType ActionType `json:"actionType"`
	Quantity   *int       `json:"quantity,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// AnalyticsWindow bounds aggregation to events created in [Since, Until].
// A nil bound is open.
type AnalyticsWindow struct {
	Since *time.Time `json:"since,omitempty"`
	Until *time.Time `json:"until,omitempty"`
}

// Contains reports whether t falls inside the window.
func (w AnalyticsWindow) Contains(t time.Time) bool {
	if w.Since != nil && t.Before(*w.Since) {
		return false
	}
	if w.Until != nil && t.After(*w.Until) {
		return false
	}

	return true
}

// ProductActionTotal is one row of a ranked aggregation: an event count or a summed quantity.
type ProductActionTotal struct {
	ProductID uuid.UUID
	Total     int64
}

// ProductCountSummary ranks a product by how many events it received.
type ProductCountSummary struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Count       int64     `json:"count"`
}

// ProductQuantitySummary ranks a product by the quantity added to carts.
type ProductQuantitySummary struct {
	ProductID     uuid.UUID `json:"productId"`
	ProductName   string    `json:"productName"`
	TotalQuantity int64     `json:"totalQuantity"`
}

// AnalyticsSummary holds the top products per action type.
type AnalyticsSummary struct {
	MostViewedProducts      []ProductCountSummary    `json:"mostViewedProducts"`
	MostClickedProducts     []ProductCountSummary    `json:"mostClickedProducts"`
	MostAddedToCartProducts []ProductQuantitySummary `json:"mostAddedToCartProducts"`
}
