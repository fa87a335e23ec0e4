package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"menuboard/internal/domain/repository"
	"menuboard/internal/domain/service"
	mockRepo "menuboard/internal/mocks/repository"
	mockSvc "menuboard/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTxFactory returns a factory handing out the given tx-bound repositories.
func newTxFactory(
	t *testing.T,
	categoryRepo *mockRepo.MockCategoryRepository,
	productRepo *mockRepo.MockProductRepository,
) *mockRepo.MockRepositoryFactory {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	if categoryRepo != nil {
		factory.EXPECT().NewCategoryRepository().Return(categoryRepo).Maybe()
	}
	if productRepo != nil {
		factory.EXPECT().NewProductRepository().Return(productRepo).Maybe()
	}

	return factory
}

// expectTx makes the transaction manager run the callback against factory and return its error.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}

func expectMenuChange(cache *mockSvc.MockMenuCache, notifier *mockSvc.MockMenuNotifier, kind, action string) {
	cache.EXPECT().Invalidate(mock.Anything).Return(nil).Once()
	notifier.EXPECT().
		NotifyMenuChanged(mock.Anything, mock.MatchedBy(func(change service.MenuChange) bool {
			return change.Kind == kind && change.Action == action
		})).
		Return().
		Once()
}
