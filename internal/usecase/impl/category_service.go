// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	menuChanges  menuChangePublisher
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	MenuCache    service.MenuCache
	MenuNotifier service.MenuNotifier
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		menuChanges: menuChangePublisher{
			cache:    params.MenuCache,
			notifier: params.MenuNotifier,
		},
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCategory trims and stores a new category.
func (srv *categoryService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrCategoryNameEmpty
	}

	category := &entity.Category{Name: name}
	if err := srv.categoryRepo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return nil, domainerrors.ErrCategoryAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.String("categoryID", category.ID.String()), slog.String("name", name))
	srv.menuChanges.publish(ctx, srv.log(ctx), service.MenuChangeCategory, service.MenuChangeCreated, category.ID)

	return category, nil
}

// GetCategory retrieves a category by ID.
func (srv *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	if id == uuid.Nil {
		return nil, domainerrors.ErrCategoryIDRequired
	}

	category, err := srv.categoryRepo.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, mapCategoryLookupError(err)
	}

	return category, nil
}

// ListCategories returns every category ordered by name.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// UpdateCategory renames a category.
func (srv *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*entity.Category, error) {
	if id == uuid.Nil {
		return nil, domainerrors.ErrCategoryIDRequired
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrCategoryNameEmpty
	}

	var updated *entity.Category
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		category, err := categoryRepo.FindCategoryByID(ctx, id)
		if err != nil {
			return mapCategoryLookupError(err)
		}

		category.Name = name
		if err := categoryRepo.UpdateCategory(ctx, category); err != nil {
			return mapCategoryWriteError(err, "failed to update category")
		}

		updated, err = categoryRepo.FindCategoryByID(ctx, id)
		if err != nil {
			return mapCategoryLookupError(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Category updated", slog.String("categoryID", id.String()), slog.String("name", name))
	srv.menuChanges.publish(ctx, srv.log(ctx), service.MenuChangeCategory, service.MenuChangeUpdated, id)

	return updated, nil
}

// DeleteCategory removes a category. Categories that still own products are kept.
func (srv *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domainerrors.ErrCategoryIDRequired
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		if _, err := categoryRepo.FindCategoryByID(ctx, id); err != nil {
			return mapCategoryLookupError(err)
		}

		count, err := categoryRepo.CountProductsByCategory(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count category products")
		}
		if count > 0 {
			return domainerrors.ErrCategoryHasProducts
		}

		if err := categoryRepo.DeleteCategory(ctx, id); err != nil {
			return mapCategoryWriteError(err, "failed to delete category")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Category deleted", slog.String("categoryID", id.String()))
	srv.menuChanges.publish(ctx, srv.log(ctx), service.MenuChangeCategory, service.MenuChangeDeleted, id)

	return nil
}

func mapCategoryLookupError(err error) error {
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domainerrors.ErrCategoryNotFound
	}

	return errors.Wrap(err, "failed to find category")
}

func mapCategoryWriteError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrCategoryNotFound):
		return domainerrors.ErrCategoryNotFound
	case errors.Is(err, repository.ErrDuplicateCategory):
		return domainerrors.ErrCategoryAlreadyExists
	case errors.Is(err, repository.ErrCategoryInUse):
		return domainerrors.ErrCategoryHasProducts
	default:
		return errors.Wrap(err, message)
	}
}
