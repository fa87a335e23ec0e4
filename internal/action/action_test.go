package action

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"menuboard/internal/domain/entity"
	domainerrors "menuboard/internal/domain/errors"
	"menuboard/internal/errors"
	mocks "menuboard/internal/mocks/usecase"
	"menuboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type outcomeRecorder struct {
	mu       sync.Mutex
	outcomes map[string][]string
}

func (r *outcomeRecorder) RecordAction(action, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.outcomes == nil {
		r.outcomes = make(map[string][]string)
	}
	r.outcomes[action] = append(r.outcomes[action], outcome)
}

type actionsFixture struct {
	actions    *Actions
	categories *mocks.MockCategoryUsecase
	products   *mocks.MockProductUsecase
	analytics  *mocks.MockAnalyticsUsecase
	menu       *mocks.MockMenuUsecase
	cart       *mocks.MockCartUsecase
	recorder   *outcomeRecorder
}

func newActionsFixture(t *testing.T) *actionsFixture {
	t.Helper()

	f := &actionsFixture{
		categories: mocks.NewMockCategoryUsecase(t),
		products:   mocks.NewMockProductUsecase(t),
		analytics:  mocks.NewMockAnalyticsUsecase(t),
		menu:       mocks.NewMockMenuUsecase(t),
		cart:       mocks.NewMockCartUsecase(t),
		recorder:   &outcomeRecorder{},
	}
	f.actions = New(Params{
		Categories: f.categories,
		Products:   f.products,
		Analytics:  f.analytics,
		Menu:       f.menu,
		Cart:       f.cart,
		Recorder:   f.recorder,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func TestParseID(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name string
		raw  string
		want uuid.UUID
	}{
		{name: "valid", raw: id.String(), want: id},
		{name: "padded", raw: "  " + id.String() + " ", want: id},
		{name: "blank", raw: "   ", want: uuid.Nil},
		{name: "malformed", raw: "42", want: uuid.Max},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseID(tt.raw))
		})
	}
}

func TestCreateCategory_Outcomes(t *testing.T) {
	category := &entity.Category{ID: uuid.New(), Name: "DRINKS"}

	tests := []struct {
		name        string
		setup       func(f *actionsFixture)
		wantSuccess bool
		wantStatus  int
		wantMessage string
		wantOutcome string
	}{
		{
			name: "created",
			setup: func(f *actionsFixture) {
				f.categories.EXPECT().CreateCategory(mock.Anything, " DRINKS ").Return(category, nil).Once()
			},
			wantSuccess: true,
			wantStatus:  http.StatusCreated,
			wantOutcome: OutcomeSuccess,
		},
		{
			name: "validation keeps its message",
			setup: func(f *actionsFixture) {
				f.categories.EXPECT().CreateCategory(mock.Anything, " DRINKS ").
					Return(nil, domainerrors.ErrCategoryNameEmpty).Once()
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Category name cannot be empty.",
			wantOutcome: OutcomeRejected,
		},
		{
			name: "wrapped conflict keeps its message",
			setup: func(f *actionsFixture) {
				f.categories.EXPECT().CreateCategory(mock.Anything, " DRINKS ").
					Return(nil, errors.Wrap(domainerrors.ErrCategoryAlreadyExists, "create category")).Once()
			},
			wantStatus:  http.StatusConflict,
			wantMessage: "A category with this name already exists.",
			wantOutcome: OutcomeRejected,
		},
		{
			name: "unexpected error uses the generic message",
			setup: func(f *actionsFixture) {
				f.categories.EXPECT().CreateCategory(mock.Anything, " DRINKS ").
					Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "")).Once()
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to create category.",
			wantOutcome: OutcomeFailed,
		},
		{
			name: "panic is recovered",
			setup: func(f *actionsFixture) {
				f.categories.EXPECT().CreateCategory(mock.Anything, " DRINKS ").
					RunAndReturn(func(context.Context, string) (*entity.Category, error) {
						panic("nil map write")
					}).Once()
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to create category.",
			wantOutcome: OutcomePanic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newActionsFixture(t)
			tt.setup(f)

			result := f.actions.CreateCategory(context.Background(), CategoryInput{Name: " DRINKS "})

			assert.Equal(t, tt.wantSuccess, result.Success())
			assert.Equal(t, tt.wantStatus, result.Status())
			assert.Equal(t, tt.wantMessage, result.Message())
			assert.Equal(t, []string{tt.wantOutcome}, f.recorder.outcomes["createCategory"])
			if tt.wantSuccess {
				assert.Equal(t, "category", result.Key())
				assert.Equal(t, category, result.Data())
			}
		})
	}
}

func TestDeleteCategory_Message(t *testing.T) {
	f := newActionsFixture(t)
	id := uuid.New()
	f.categories.EXPECT().DeleteCategory(mock.Anything, id).Return(nil).Once()

	result := f.actions.DeleteCategory(context.Background(), id.String())

	body, err := result.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"Category deleted successfully."}`, string(body))
}

func TestUpdateCategory_MissingID(t *testing.T) {
	f := newActionsFixture(t)
	f.categories.EXPECT().UpdateCategory(mock.Anything, uuid.Nil, "Drinks").
		Return(nil, domainerrors.ErrCategoryIDRequired).Once()

	result := f.actions.UpdateCategory(context.Background(), "", CategoryInput{Name: "Drinks"})

	assert.False(t, result.Success())
	assert.Equal(t, "Category ID must be provided.", result.Message())
}

func TestListCategories_EmptyIsArray(t *testing.T) {
	f := newActionsFixture(t)
	f.categories.EXPECT().ListCategories(mock.Anything).Return(nil, nil).Once()

	result := f.actions.ListCategories(context.Background())

	body, err := result.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"categories":[]}`, string(body))
}

func TestCreateProduct_MapsInput(t *testing.T) {
	f := newActionsFixture(t)
	categoryID := uuid.New()
	price := decimal.RequireFromString("3.50")
	created := &entity.Product{ID: uuid.New(), Name: "Cola"}

	f.products.EXPECT().
		CreateProduct(mock.Anything, mock.MatchedBy(func(in *usecase.CreateProductInput) bool {
			return in.Name == "Cola" &&
				in.Price.Equal(price) &&
				in.Type == entity.ProductTypeMultiple &&
				in.CategoryID == categoryID &&
				len(in.Variants) == 2
		})).
		Return(created, nil).
		Once()

	result := f.actions.CreateProduct(context.Background(), ProductInput{
		Name:       "Cola",
		Price:      &price,
		Type:       entity.ProductTypeMultiple,
		CategoryID: categoryID.String(),
		Variants:   []string{"Small", "Large"},
	})

	require.True(t, result.Success())
	assert.Equal(t, http.StatusCreated, result.Status())
	assert.Equal(t, "product", result.Key())
	assert.Equal(t, created, result.Data())
}

func TestUpdateProduct_MalformedCategoryIsUnknown(t *testing.T) {
	f := newActionsFixture(t)
	id := uuid.New()
	malformed := "not-a-uuid"

	f.products.EXPECT().
		UpdateProduct(mock.Anything, id, mock.MatchedBy(func(in *usecase.UpdateProductInput) bool {
			return in.CategoryID != nil && *in.CategoryID == uuid.Max && in.Name == nil
		})).
		Return(nil, domainerrors.ErrProductCategoryNotFound).
		Once()

	result := f.actions.UpdateProduct(context.Background(), id.String(), ProductPatch{CategoryID: &malformed})

	assert.Equal(t, http.StatusNotFound, result.Status())
	assert.Equal(t, "The specified category does not exist.", result.Message())
}

func TestDeleteProduct_UnexpectedError(t *testing.T) {
	f := newActionsFixture(t)
	id := uuid.New()
	f.products.EXPECT().DeleteProduct(mock.Anything, id).Return(errors.New("tx aborted")).Once()

	result := f.actions.DeleteProduct(context.Background(), id.String())

	assert.False(t, result.Success())
	assert.Equal(t, "Failed to delete product.", result.Message())
	assert.Equal(t, domainerrors.CodeInternalError, result.Code())
}

func TestListProducts_Filter(t *testing.T) {
	categoryID := uuid.New()

	t.Run("no filter", func(t *testing.T) {
		f := newActionsFixture(t)
		f.products.EXPECT().ListProducts(mock.Anything, (*uuid.UUID)(nil)).Return([]*entity.Product{}, nil).Once()

		assert.True(t, f.actions.ListProducts(context.Background(), "").Success())
	})

	t.Run("category filter", func(t *testing.T) {
		f := newActionsFixture(t)
		f.products.EXPECT().
			ListProducts(mock.Anything, mock.MatchedBy(func(id *uuid.UUID) bool {
				return id != nil && *id == categoryID
			})).
			Return([]*entity.Product{}, nil).
			Once()

		assert.True(t, f.actions.ListProducts(context.Background(), categoryID.String()).Success())
	})

	t.Run("malformed filter", func(t *testing.T) {
		f := newActionsFixture(t)

		result := f.actions.ListProducts(context.Background(), "drinks")

		assert.Equal(t, http.StatusBadRequest, result.Status())
		assert.Equal(t, "Invalid input.", result.Message())
	})
}

func TestRecordAddToCart(t *testing.T) {
	f := newActionsFixture(t)
	id := uuid.New()
	f.analytics.EXPECT().RecordAddToCart(mock.Anything, id, 3).Return(nil).Once()

	result := f.actions.RecordAddToCart(context.Background(), AddToCartEvent{ProductID: id.String(), Quantity: 3})

	body, err := result.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true}`, string(body))
}

func TestRecordView_UnknownProduct(t *testing.T) {
	f := newActionsFixture(t)
	f.analytics.EXPECT().RecordView(mock.Anything, uuid.Max).Return(domainerrors.ErrViewProductInvalid).Once()

	result := f.actions.RecordView(context.Background(), ProductEvent{ProductID: "abc"})

	assert.Equal(t, http.StatusUnprocessableEntity, result.Status())
	assert.Equal(t, "Invalid Product ID. Cannot record view.", result.Message())
}

func TestRecordClick_UnexpectedError(t *testing.T) {
	f := newActionsFixture(t)
	id := uuid.New()
	f.analytics.EXPECT().RecordClick(mock.Anything, id).Return(errors.New("disk full")).Once()

	result := f.actions.RecordClick(context.Background(), ProductEvent{ProductID: id.String()})

	assert.Equal(t, "Failed to record product click.", result.Message())
}

func TestGetAnalyticsSummary_Window(t *testing.T) {
	summary := &entity.AnalyticsSummary{}

	t.Run("open window", func(t *testing.T) {
		f := newActionsFixture(t)
		f.analytics.EXPECT().GetAnalyticsSummary(mock.Anything, (*entity.AnalyticsWindow)(nil)).Return(summary, nil).Once()

		result := f.actions.GetAnalyticsSummary(context.Background(), SummaryFilter{})

		assert.Equal(t, "summary", result.Key())
	})

	t.Run("bounded window", func(t *testing.T) {
		f := newActionsFixture(t)
		since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		f.analytics.EXPECT().
			GetAnalyticsSummary(mock.Anything, mock.MatchedBy(func(w *entity.AnalyticsWindow) bool {
				return w != nil && w.Since.Equal(since) && w.Until == nil
			})).
			Return(summary, nil).
			Once()

		assert.True(t, f.actions.GetAnalyticsSummary(context.Background(), SummaryFilter{Since: &since}).Success())
	})

	t.Run("failure", func(t *testing.T) {
		f := newActionsFixture(t)
		f.analytics.EXPECT().GetAnalyticsSummary(mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()

		result := f.actions.GetAnalyticsSummary(context.Background(), SummaryFilter{})

		assert.Equal(t, "Failed to fetch analytics summary.", result.Message())
	})
}

func TestGetPublicMenu_Failure(t *testing.T) {
	f := newActionsFixture(t)
	f.menu.EXPECT().GetPublicMenu(mock.Anything).Return(nil, errors.New("connection refused")).Once()

	result := f.actions.GetPublicMenu(context.Background())

	body, err := result.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"Failed to load menu data."}`, string(body))
}

func TestGetMenuQRCode(t *testing.T) {
	f := newActionsFixture(t)
	f.menu.EXPECT().GetMenuQRCode(mock.Anything, "7").Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

	result := f.actions.GetMenuQRCode(context.Background(), "7")

	require.True(t, result.Success())
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, result.Data())
}

func TestQuoteCart_MapsItems(t *testing.T) {
	f := newActionsFixture(t)
	colaID := uuid.New()
	quote := &entity.CartQuote{OrderType: entity.OrderTypeTakeaway}

	f.cart.EXPECT().
		QuoteCart(mock.Anything, mock.MatchedBy(func(in *usecase.QuoteCartInput) bool {
			return in.OrderType == entity.OrderTypeTakeaway &&
				len(in.Items) == 2 &&
				in.Items[0].ProductID == colaID &&
				len(in.Items[0].Variants) == 1 &&
				in.Items[1].ProductID == uuid.Nil
		})).
		Return(quote, nil).
		Once()

	result := f.actions.QuoteCart(context.Background(), CartInput{
		OrderType: entity.OrderTypeTakeaway,
		Items: []CartItem{
			{ProductID: colaID.String(), Variants: []entity.VariantSelection{{Name: "Small", Quantity: 2}}},
			{ProductID: "", Quantity: 1},
		},
	})

	require.True(t, result.Success())
	assert.Equal(t, "quote", result.Key())
	assert.Equal(t, quote, result.Data())
}

func TestActions_NilRecorder(t *testing.T) {
	categories := mocks.NewMockCategoryUsecase(t)
	categories.EXPECT().ListCategories(mock.Anything).Return([]*entity.Category{}, nil).Once()

	actions := New(Params{Categories: categories, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	assert.True(t, actions.ListCategories(context.Background()).Success())
}
