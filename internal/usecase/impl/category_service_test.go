package impl

import (
	"context"
	"testing"

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

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	txManager    *mockRepo.MockTransactionManager
	categoryRepo *mockRepo.MockCategoryRepository
	menuCache    *mockSvc.MockMenuCache
	notifier     *mockSvc.MockMenuNotifier
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	menuCache := mockSvc.NewMockMenuCache(t)
	notifier := mockSvc.NewMockMenuNotifier(t)

	svc := NewCategoryService(CategoryServiceParams{
		TxManager:    txManager,
		CategoryRepo: categoryRepo,
		MenuCache:    menuCache,
		MenuNotifier: notifier,
		Logger:       newTestLogger(),
	})

	return categoryServiceFixtures{
		service:      svc,
		txManager:    txManager,
		categoryRepo: categoryRepo,
		menuCache:    menuCache,
		notifier:     notifier,
	}
}

func TestCategoryService_CreateCategory_TrimsAndNotifies(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().
		CreateCategory(ctx, mock.MatchedBy(func(c *entity.Category) bool { return c.Name == "DRINKS" })).
		Run(func(_ context.Context, c *entity.Category) { c.ID = categoryID }).
		Return(nil)
	expectMenuChange(fx.menuCache, fx.notifier, service.MenuChangeCategory, service.MenuChangeCreated)

	category, err := fx.service.CreateCategory(ctx, "  DRINKS \t")
	require.NoError(t, err)
	assert.Equal(t, categoryID, category.ID)
	assert.Equal(t, "DRINKS", category.Name)
}

func TestCategoryService_CreateCategory_EmptyName(t *testing.T) {
	fx := createTestCategoryService(t)

	_, err := fx.service.CreateCategory(context.Background(), "   ")
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNameEmpty)
}

func TestCategoryService_CreateCategory_Duplicate(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		CreateCategory(ctx, mock.AnythingOfType("*entity.Category")).
		Return(repository.ErrDuplicateCategory)

	_, err := fx.service.CreateCategory(ctx, "DRINKS")
	assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
}

func TestCategoryService_CreateCategory_CacheFailureIsIgnored(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		CreateCategory(ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil)
	fx.menuCache.EXPECT().Invalidate(ctx).Return(errors.New("redis down"))
	fx.notifier.EXPECT().NotifyMenuChanged(ctx, mock.AnythingOfType("service.MenuChange")).Return()

	_, err := fx.service.CreateCategory(ctx, "DRINKS")
	require.NoError(t, err)
}

func TestCategoryService_UpdateCategory_Validation(t *testing.T) {
	tests := []struct {
		name    string
		id      uuid.UUID
		newName string
		wantErr error
	}{
		{name: "missing id", id: uuid.Nil, newName: "FOOD", wantErr: domainerrors.ErrCategoryIDRequired},
		{name: "missing id wins over empty name", id: uuid.Nil, newName: "", wantErr: domainerrors.ErrCategoryIDRequired},
		{name: "blank name", id: uuid.New(), newName: "  ", wantErr: domainerrors.ErrCategoryNameEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCategoryService(t)

			_, err := fx.service.UpdateCategory(context.Background(), tt.id, tt.newName)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCategoryService_UpdateCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	id := uuid.New()

	expectTx(fx.txManager, newTxFactory(t, fx.categoryRepo, nil))
	fx.categoryRepo.EXPECT().FindCategoryByID(ctx, id).Return(&entity.Category{ID: id, Name: "DRINK"}, nil).Once()
	fx.categoryRepo.EXPECT().
		UpdateCategory(ctx, mock.MatchedBy(func(c *entity.Category) bool { return c.ID == id && c.Name == "DRINKS" })).
		Return(nil)
	fx.categoryRepo.EXPECT().FindCategoryByID(ctx, id).Return(&entity.Category{ID: id, Name: "DRINKS"}, nil).Once()
	expectMenuChange(fx.menuCache, fx.notifier, service.MenuChangeCategory, service.MenuChangeUpdated)

	category, err := fx.service.UpdateCategory(ctx, id, " DRINKS ")
	require.NoError(t, err)
	assert.Equal(t, "DRINKS", category.Name)
}

func TestCategoryService_UpdateCategory_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	id := uuid.New()

	expectTx(fx.txManager, newTxFactory(t, fx.categoryRepo, nil))
	fx.categoryRepo.EXPECT().FindCategoryByID(ctx, id).Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.UpdateCategory(ctx, id, "DRINKS")
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_UpdateCategory_DuplicateName(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	id := uuid.New()

	expectTx(fx.txManager, newTxFactory(t, fx.categoryRepo, nil))
	fx.categoryRepo.EXPECT().FindCategoryByID(ctx, id).Return(&entity.Category{ID: id, Name: "DRINK"}, nil)
	fx.categoryRepo.EXPECT().UpdateCategory(ctx, mock.AnythingOfType("*entity.Category")).Return(repository.ErrDuplicateCategory)

	_, err := fx.service.UpdateCategory(ctx, id, "FOOD")
	assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
}

func TestCategoryService_DeleteCategory_HasProducts(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	id := uuid.New()

	expectTx(fx.txManager, newTxFactory(t, fx.categoryRepo, nil))
	fx.categoryRepo.EXPECT().FindCategoryByID(ctx, id).Return(&entity.Category{ID: id, Name: "DRINKS"}, nil)
	fx.categoryRepo.EXPECT().CountProductsByCategory(ctx, id).Return(int64(2), nil)

	err := fx.service.DeleteCategory(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrCategoryHasProducts)

	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.CodeReferentialIntegrity, appErr.ErrorCode())
}

func TestCategoryService_DeleteCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	id := uuid.New()

	expectTx(fx.txManager, newTxFactory(t, fx.categoryRepo, nil))
	fx.categoryRepo.EXPECT().FindCategoryByID(ctx, id).Return(&entity.Category{ID: id, Name: "DRINKS"}, nil)
	fx.categoryRepo.EXPECT().CountProductsByCategory(ctx, id).Return(int64(0), nil)
	fx.categoryRepo.EXPECT().DeleteCategory(ctx, id).Return(nil)
	expectMenuChange(fx.menuCache, fx.notifier, service.MenuChangeCategory, service.MenuChangeDeleted)

	require.NoError(t, fx.service.DeleteCategory(ctx, id))
}

func TestCategoryService_DeleteCategory_RaceWithProductInsert(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	id := uuid.New()

	expectTx(fx.txManager, newTxFactory(t, fx.categoryRepo, nil))
	fx.categoryRepo.EXPECT().FindCategoryByID(ctx, id).Return(&entity.Category{ID: id, Name: "DRINKS"}, nil)
	fx.categoryRepo.EXPECT().CountProductsByCategory(ctx, id).Return(int64(0), nil)
	fx.categoryRepo.EXPECT().DeleteCategory(ctx, id).Return(repository.ErrCategoryInUse)

	err := fx.service.DeleteCategory(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryHasProducts)
}

func TestCategoryService_DeleteCategory_MissingID(t *testing.T) {
	fx := createTestCategoryService(t)

	err := fx.service.DeleteCategory(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryIDRequired)
}

func TestCategoryService_ListCategories_WrapsStoreError(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	storeErr := errors.New("connection refused")

	fx.categoryRepo.EXPECT().ListCategories(ctx).Return(nil, storeErr)

	_, err := fx.service.ListCategories(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.False(t, domainerrors.IsExpected(err))
}

func TestCategoryService_GetCategory(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.categoryRepo.EXPECT().FindCategoryByID(ctx, id).Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.GetCategory(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)

	_, err = fx.service.GetCategory(ctx, uuid.Nil)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryIDRequired)
}
