package impl

import (
	"context"
	"math"
	"net/http"
	"testing"
	"time"

	deliverycontext "menuboard/internal/delivery/context"
	"menuboard/internal/domain/entity"
	domainerrors "menuboard/internal/domain/errors"
	"menuboard/internal/domain/repository"
	"menuboard/internal/domain/service"
	mockRepo "menuboard/internal/mocks/repository"
	mockSvc "menuboard/internal/mocks/service"
	"menuboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// analyticsServiceFixtures holds all test dependencies for analytics service tests.
type analyticsServiceFixtures struct {
	service       usecase.AnalyticsUsecase
	analyticsRepo *mockRepo.MockAnalyticsRepository
	productRepo   *mockRepo.MockProductRepository
	publisher     *mockSvc.MockEventPublisher
}

func createTestAnalyticsService(t *testing.T) analyticsServiceFixtures {
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewAnalyticsService(AnalyticsServiceParams{
		AnalyticsRepo: analyticsRepo,
		ProductRepo:   productRepo,
		Publisher:     publisher,
		Logger:        newTestLogger(),
	})

	return analyticsServiceFixtures{
		service:       svc,
		analyticsRepo: analyticsRepo,
		productRepo:   productRepo,
		publisher:     publisher,
	}
}

func TestAnalyticsService_RecordView_PublishesStoredEvent(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	productID := uuid.New()

	var stored *entity.AnalyticsEvent
	fx.analyticsRepo.EXPECT().
		CreateEvent(ctx, mock.MatchedBy(func(e *entity.AnalyticsEvent) bool {
			return e.ProductID == productID && e.ActionType == entity.ActionTypeView && e.Quantity == nil
		})).
		Run(func(_ context.Context, e *entity.AnalyticsEvent) { stored = e }).
		Return(nil)
	fx.publisher.EXPECT().
		PublishAnalyticsEvent(ctx, mock.MatchedBy(func(msg *service.AnalyticsEventMessage) bool {
			return msg.RequestID == "req-1" &&
				msg.ProductID == productID.String() &&
				msg.ActionType == "VIEW" &&
				msg.EventID == stored.ID.String()
		})).
		Return(nil)

	require.NoError(t, fx.service.RecordView(ctx, productID))
}

func TestAnalyticsService_RecordClick_PublishFailureIsSwallowed(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.analyticsRepo.EXPECT().CreateEvent(ctx, mock.AnythingOfType("*entity.AnalyticsEvent")).Return(nil)
	fx.publisher.EXPECT().
		PublishAnalyticsEvent(ctx, mock.AnythingOfType("*service.AnalyticsEventMessage")).
		Return(errors.New("topic not found"))

	require.NoError(t, fx.service.RecordClick(ctx, productID))
}

func TestAnalyticsService_Record_RejectionMessages(t *testing.T) {
	tests := []struct {
		name        string
		record      func(svc usecase.AnalyticsUsecase, ctx context.Context, id uuid.UUID) error
		wantMissing string
		wantUnknown string
	}{
		{
			name: "view",
			record: func(svc usecase.AnalyticsUsecase, ctx context.Context, id uuid.UUID) error {
				return svc.RecordView(ctx, id)
			},
			wantMissing: "Product ID must be provided for recording view.",
			wantUnknown: "Invalid Product ID. Cannot record view.",
		},
		{
			name: "click",
			record: func(svc usecase.AnalyticsUsecase, ctx context.Context, id uuid.UUID) error {
				return svc.RecordClick(ctx, id)
			},
			wantMissing: "Product ID must be provided for recording click.",
			wantUnknown: "Invalid Product ID. Cannot record click.",
		},
		{
			name: "add to cart",
			record: func(svc usecase.AnalyticsUsecase, ctx context.Context, id uuid.UUID) error {
				return svc.RecordAddToCart(ctx, id, 1)
			},
			wantMissing: "Product ID must be provided for recording add to cart.",
			wantUnknown: "Invalid Product ID. Cannot record add to cart.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" missing product", func(t *testing.T) {
			fx := createTestAnalyticsService(t)

			err := tt.record(fx.service, context.Background(), uuid.Nil)

			appErr, ok := domainerrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
			assert.Equal(t, tt.wantMissing, appErr.Message())
		})

		t.Run(tt.name+" unknown product", func(t *testing.T) {
			fx := createTestAnalyticsService(t)
			ctx := context.Background()
			fx.analyticsRepo.EXPECT().
				CreateEvent(ctx, mock.AnythingOfType("*entity.AnalyticsEvent")).
				Return(repository.ErrAnalyticsProductNotFound)

			err := tt.record(fx.service, ctx, uuid.New())

			appErr, ok := domainerrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode())
			assert.Equal(t, tt.wantUnknown, appErr.Message())
		})
	}
}

func TestAnalyticsService_RecordAddToCart_Validation(t *testing.T) {
	beyondInt32 := math.MaxInt32
	beyondInt32++

	tests := []struct {
		name      string
		productID uuid.UUID
		quantity  int
		wantErr   error
	}{
		{name: "missing product", productID: uuid.Nil, quantity: 1, wantErr: domainerrors.ErrAddToCartProductIDRequired},
		{name: "missing product wins over quantity", productID: uuid.Nil, quantity: 0, wantErr: domainerrors.ErrAddToCartProductIDRequired},
		{name: "zero quantity", productID: uuid.New(), quantity: 0, wantErr: domainerrors.ErrAnalyticsQuantityInvalid},
		{name: "negative quantity", productID: uuid.New(), quantity: -2, wantErr: domainerrors.ErrAnalyticsQuantityInvalid},
		{name: "quantity beyond stored range", productID: uuid.New(), quantity: beyondInt32, wantErr: domainerrors.ErrAnalyticsQuantityInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAnalyticsService(t)

			err := fx.service.RecordAddToCart(context.Background(), tt.productID, tt.quantity)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAnalyticsService_RecordAddToCart_StoresQuantity(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	fx.analyticsRepo.EXPECT().
		CreateEvent(ctx, mock.MatchedBy(func(e *entity.AnalyticsEvent) bool {
			return e.ActionType == entity.ActionTypeAddToCart && e.Quantity != nil && *e.Quantity == 3
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishAnalyticsEvent(ctx, mock.Anything).Return(nil)

	require.NoError(t, fx.service.RecordAddToCart(ctx, uuid.New(), 3))
}

func TestAnalyticsService_GetAnalyticsSummary(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()
	productA := uuid.New()
	productB := uuid.New()
	deleted := uuid.New()

	fx.analyticsRepo.EXPECT().
		TopProductsByCount(ctx, entity.ActionTypeView, entity.AnalyticsWindow{}, entity.TopProductsLimit).
		Return([]entity.ProductActionTotal{{ProductID: productA, Total: 2}, {ProductID: productB, Total: 1}}, nil)
	fx.analyticsRepo.EXPECT().
		TopProductsByCount(ctx, entity.ActionTypeClick, entity.AnalyticsWindow{}, entity.TopProductsLimit).
		Return([]entity.ProductActionTotal{{ProductID: deleted, Total: 4}}, nil)
	fx.analyticsRepo.EXPECT().
		TopProductsByQuantity(ctx, entity.ActionTypeAddToCart, entity.AnalyticsWindow{}, entity.TopProductsLimit).
		Return([]entity.ProductActionTotal{{ProductID: productA, Total: 6}}, nil)
	fx.productRepo.EXPECT().
		FindProductNames(ctx, mock.MatchedBy(func(ids []uuid.UUID) bool {
			return len(ids) == 3 && assert.ObjectsAreEqual(
				map[uuid.UUID]bool{productA: true, productB: true, deleted: true},
				map[uuid.UUID]bool{ids[0]: true, ids[1]: true, ids[2]: true},
			)
		})).
		Return(map[uuid.UUID]string{productA: "Cola", productB: "Inca Kola"}, nil).
		Once()

	summary, err := fx.service.GetAnalyticsSummary(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, []entity.ProductCountSummary{
		{ProductID: productA, ProductName: "Cola", Count: 2},
		{ProductID: productB, ProductName: "Inca Kola", Count: 1},
	}, summary.MostViewedProducts)
	assert.Equal(t, []entity.ProductCountSummary{
		{ProductID: deleted, ProductName: entity.UnknownProductName, Count: 4},
	}, summary.MostClickedProducts)
	assert.Equal(t, []entity.ProductQuantitySummary{
		{ProductID: productA, ProductName: "Cola", TotalQuantity: 6},
	}, summary.MostAddedToCartProducts)
}

func TestAnalyticsService_GetAnalyticsSummary_EmptySkipsNameLookup(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	fx.analyticsRepo.EXPECT().TopProductsByCount(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Twice()
	fx.analyticsRepo.EXPECT().TopProductsByQuantity(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	summary, err := fx.service.GetAnalyticsSummary(ctx, &entity.AnalyticsWindow{})
	require.NoError(t, err)
	assert.NotNil(t, summary.MostViewedProducts)
	assert.Empty(t, summary.MostViewedProducts)
	assert.Empty(t, summary.MostClickedProducts)
	assert.Empty(t, summary.MostAddedToCartProducts)
}

func TestAnalyticsService_GetAnalyticsSummary_InvalidWindow(t *testing.T) {
	fx := createTestAnalyticsService(t)
	until := time.Now()
	since := until.Add(time.Hour)

	_, err := fx.service.GetAnalyticsSummary(context.Background(), &entity.AnalyticsWindow{Since: &since, Until: &until})
	assert.ErrorIs(t, err, domainerrors.ErrAnalyticsWindowInvalid)
}

func TestAnalyticsService_GetAnalyticsSummary_StoreError(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	fx.analyticsRepo.EXPECT().
		TopProductsByCount(ctx, entity.ActionTypeView, mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout"))

	_, err := fx.service.GetAnalyticsSummary(ctx, nil)
	require.Error(t, err)
	assert.False(t, domainerrors.IsExpected(err))
}
