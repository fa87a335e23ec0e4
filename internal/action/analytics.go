package action

import (
	"context"
	"time"

	"menuboard/internal/domain/entity"
)

// ProductEvent is the body of view and click tracking requests.
type ProductEvent struct {
	ProductID string `json:"productId"`
}

// AddToCartEvent is the body of an add-to-cart tracking request.
type AddToCartEvent struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// SummaryFilter bounds the analytics summary to events created in [Since, Until].
type SummaryFilter struct {
	Since *time.Time
	Until *time.Time
}

var (
	opRecordView       = operation{name: "recordView", failure: "Failed to record product view."}
	opRecordClick      = operation{name: "recordClick", failure: "Failed to record product click."}
	opRecordAddToCart  = operation{name: "recordAddToCart", failure: "Failed to record add to cart event."}
	opAnalyticsSummary = operation{name: "getAnalyticsSummary", key: "summary", failure: "Failed to fetch analytics summary."}
)

// RecordView records that a product was viewed.
func (a *Actions) RecordView(ctx context.Context, event ProductEvent) Result[struct{}] {
	return run(ctx, a, opRecordView, func() (struct{}, error) {
		return struct{}{}, a.analytics.RecordView(ctx, parseID(event.ProductID))
	})
}

// RecordClick records that a product was clicked.
func (a *Actions) RecordClick(ctx context.Context, event ProductEvent) Result[struct{}] {
	return run(ctx, a, opRecordClick, func() (struct{}, error) {
		return struct{}{}, a.analytics.RecordClick(ctx, parseID(event.ProductID))
	})
}

// RecordAddToCart records that a quantity of a product was added to a cart.
func (a *Actions) RecordAddToCart(ctx context.Context, event AddToCartEvent) Result[struct{}] {
	return run(ctx, a, opRecordAddToCart, func() (struct{}, error) {
		return struct{}{}, a.analytics.RecordAddToCart(ctx, parseID(event.ProductID), event.Quantity)
	})
}

// GetAnalyticsSummary returns the top products per action type.
func (a *Actions) GetAnalyticsSummary(ctx context.Context, filter SummaryFilter) Result[*entity.AnalyticsSummary] {
	return run(ctx, a, opAnalyticsSummary, func() (*entity.AnalyticsSummary, error) {
		var window *entity.AnalyticsWindow
		if filter.Since != nil || filter.Until != nil {
			window = &entity.AnalyticsWindow{Since: filter.Since, Until: filter.Until}
		}

		return a.analytics.GetAnalyticsSummary(ctx, window)
	})
}
