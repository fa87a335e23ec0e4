package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	deliverycontext "menuboard/internal/delivery/context"
	"menuboard/internal/domain/entity"
	domainerrors "menuboard/internal/domain/errors"
	"menuboard/internal/domain/repository"
	"menuboard/internal/domain/service"
	"menuboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
	publisher     service.EventPublisher
	logger        *slog.Logger
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	AnalyticsRepo repository.AnalyticsRepository
	ProductRepo   repository.ProductRepository
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		analyticsRepo: params.AnalyticsRepo,
		productRepo:   params.ProductRepo,
		publisher:     params.Publisher,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordView records that a product was viewed.
func (srv *analyticsService) RecordView(ctx context.Context, productID uuid.UUID) error {
	return srv.record(ctx, productID, entity.ActionTypeView, nil)
}

// RecordClick records that a product was clicked.
func (srv *analyticsService) RecordClick(ctx context.Context, productID uuid.UUID) error {
	return srv.record(ctx, productID, entity.ActionTypeClick, nil)
}

// RecordAddToCart records that quantity units of a product were added to a cart.
func (srv *analyticsService) RecordAddToCart(ctx context.Context, productID uuid.UUID, quantity int) error {
	if productID == uuid.Nil {
		return domainerrors.ErrAddToCartProductIDRequired
	}
	// The stored quantity is a 32-bit integer.
	if quantity <= 0 || quantity > math.MaxInt32 {
		return domainerrors.ErrAnalyticsQuantityInvalid
	}

	return srv.record(ctx, productID, entity.ActionTypeAddToCart, &quantity)
}

// recordErrors are the user-facing rejections of one action type.
type recordErrors struct {
	missingID      error
	unknownProduct error
}

var recordErrorsByAction = map[entity.ActionType]recordErrors{
	entity.ActionTypeView:      {domainerrors.ErrViewProductIDRequired, domainerrors.ErrViewProductInvalid},
	entity.ActionTypeClick:     {domainerrors.ErrClickProductIDRequired, domainerrors.ErrClickProductInvalid},
	entity.ActionTypeAddToCart: {domainerrors.ErrAddToCartProductIDRequired, domainerrors.ErrAddToCartProductInvalid},
}

func (srv *analyticsService) record(ctx context.Context, productID uuid.UUID, action entity.ActionType, quantity *int) error {
	rejections := recordErrorsByAction[action]
	if productID == uuid.Nil {
		return rejections.missingID
	}

	event := &entity.AnalyticsEvent{
		ID:         uuid.New(),
		ProductID:  productID,
		ActionType: action,
		Quantity:   quantity,
		CreatedAt:  time.Now().UTC(),
	}

	if err := srv.analyticsRepo.CreateEvent(ctx, event); err != nil {
		if errors.Is(err, repository.ErrAnalyticsProductNotFound) {
			return rejections.unknownProduct
		}

		return errors.Wrapf(err, "failed to record %s event", action)
	}

	srv.publish(ctx, event)

	return nil
}

// publish forwards a stored event. Failures are logged and never reach the caller.
func (srv *analyticsService) publish(ctx context.Context, event *entity.AnalyticsEvent) {
	if srv.publisher == nil {
		return
	}

	msg := &service.AnalyticsEventMessage{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    event.ID.String(),
		ProductID:  event.ProductID.String(),
		ActionType: event.ActionType.String(),
		Quantity:   event.Quantity,
		OccurredAt: event.CreatedAt,
	}

	if err := srv.publisher.PublishAnalyticsEvent(ctx, msg); err != nil {
		srv.log(ctx).Warn("Failed to publish analytics event",
			slog.String("eventID", msg.EventID),
			slog.String("actionType", msg.ActionType),
			slog.Any("error", err),
		)
	}
}

// GetAnalyticsSummary ranks the top products per action type. Views and clicks are ranked by
// event count, add-to-cart by summed quantity. Product names are resolved in one lookup.
func (srv *analyticsService) GetAnalyticsSummary(ctx context.Context, window *entity.AnalyticsWindow) (*entity.AnalyticsSummary, error) {
	var w entity.AnalyticsWindow
	if window != nil {
		w = *window
	}
	if w.Since != nil && w.Until != nil && w.Since.After(*w.Until) {
		return nil, domainerrors.ErrAnalyticsWindowInvalid
	}

	viewed, err := srv.analyticsRepo.TopProductsByCount(ctx, entity.ActionTypeView, w, entity.TopProductsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank viewed products")
	}

	clicked, err := srv.analyticsRepo.TopProductsByCount(ctx, entity.ActionTypeClick, w, entity.TopProductsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank clicked products")
	}

	added, err := srv.analyticsRepo.TopProductsByQuantity(ctx, entity.ActionTypeAddToCart, w, entity.TopProductsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank products added to cart")
	}

	names, err := srv.resolveNames(ctx, viewed, clicked, added)
	if err != nil {
		return nil, err
	}

	return &entity.AnalyticsSummary{
		MostViewedProducts:      toCountSummaries(viewed, names),
		MostClickedProducts:     toCountSummaries(clicked, names),
		MostAddedToCartProducts: toQuantitySummaries(added, names),
	}, nil
}

func (srv *analyticsService) resolveNames(ctx context.Context, rankings ...[]entity.ProductActionTotal) (map[uuid.UUID]string, error) {
	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0)
	for _, ranking := range rankings {
		for _, row := range ranking {
			if _, ok := seen[row.ProductID]; ok {
				continue
			}
			seen[row.ProductID] = struct{}{}
			ids = append(ids, row.ProductID)
		}
	}

	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	names, err := srv.productRepo.FindProductNames(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve product names")
	}

	return names, nil
}

func productName(names map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := names[id]; ok {
		return name
	}

	return entity.UnknownProductName
}

func toCountSummaries(rows []entity.ProductActionTotal, names map[uuid.UUID]string) []entity.ProductCountSummary {
	summaries := make([]entity.ProductCountSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, entity.ProductCountSummary{
			ProductID:   row.ProductID,
			ProductName: productName(names, row.ProductID),
			Count:       row.Total,
		})
	}

	return summaries
}

func toQuantitySummaries(rows []entity.ProductActionTotal, names map[uuid.UUID]string) []entity.ProductQuantitySummary {
	summaries := make([]entity.ProductQuantitySummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, entity.ProductQuantitySummary{
			ProductID:     row.ProductID,
			ProductName:   productName(names, row.ProductID),
			TotalQuantity: row.Total,
		})
	}

	return summaries
}
