// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"menuboard/internal/domain/entity"
	"menuboard/internal/errors"
)

// ErrAnalyticsProductNotFound is returned when an event references a product that does not exist.
var ErrAnalyticsProductNotFound = errors.New("analytics event references unknown product")

// AnalyticsRepository defines the interface for analytics event storage and aggregation.
type AnalyticsRepository interface {
	// CreateEvent appends an event. The product must exist at insert time.
	CreateEvent(ctx context.Context, event *entity.AnalyticsEvent) error

	// TopProductsByCount ranks products by number of events of the action type,
	// descending, ties broken by product ID ascending.
	TopProductsByCount(ctx context.Context, action entity.ActionType, window entity.AnalyticsWindow, limit int) ([]entity.ProductActionTotal, error)

	// TopProductsByQuantity ranks products by summed quantity of the action type,
	// descending, ties broken by product ID ascending.
	TopProductsByQuantity(ctx context.Context, action entity.ActionType, window entity.AnalyticsWindow, limit int) ([]entity.ProductActionTotal, error)
}
