package usecase

import (
	"context"

	"menuboard/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyticsUsecase defines the interface for customer interaction tracking
type AnalyticsUsecase interface {
	// RecordView records that a product was viewed
	RecordView(ctx context.Context, productID uuid.UUID) error

	// RecordClick records that a product was clicked
	RecordClick(ctx context.Context, productID uuid.UUID) error

	// RecordAddToCart records that quantity units of a product were added to a cart
	RecordAddToCart(ctx context.Context, productID uuid.UUID, quantity int) error

	// GetAnalyticsSummary returns the top products per action type, optionally within a time window
	GetAnalyticsSummary(ctx context.Context, window *entity.AnalyticsWindow) (*entity.AnalyticsSummary, error)
}
