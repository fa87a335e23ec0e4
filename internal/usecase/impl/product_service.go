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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	menuChanges menuChangePublisher
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	MenuCache    service.MenuCache
	MenuNotifier service.MenuNotifier
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		menuChanges: menuChangePublisher{
			cache:    params.MenuCache,
			notifier: params.MenuNotifier,
		},
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// priceCeiling is the first value a NUMERIC(12,2) column cannot hold.
var priceCeiling = decimal.New(1, 10)

// productDraft is the state a product will have once a create or update is applied.
type productDraft struct {
	name       string
	price      *decimal.Decimal
	typ        entity.ProductType
	categoryID uuid.UUID
	variants   []string
}

// validate checks the draft in a fixed order so the first failing rule decides the message.
func (d productDraft) validate() error {
	if d.name == "" {
		return domainerrors.ErrProductNameEmpty
	}
	if !storablePrice(d.price) {
		return domainerrors.ErrProductPriceInvalid
	}
	if !d.typ.IsValid() {
		return domainerrors.ErrProductTypeInvalid
	}
	if d.categoryID == uuid.Nil {
		return domainerrors.ErrProductCategoryRequired
	}
	if d.typ == entity.ProductTypeMultiple && len(d.variants) == 0 {
		return domainerrors.ErrMultipleProductNeedsVariants
	}
	if d.typ == entity.ProductTypeSingle && len(d.variants) > 0 {
		return domainerrors.ErrSingleProductHasVariants
	}

	return nil
}

// storablePrice reports whether p is non-negative and fits a NUMERIC(12,2) column without rounding.
func storablePrice(p *decimal.Decimal) bool {
	if p == nil || p.IsNegative() || p.GreaterThanOrEqual(priceCeiling) {
		return false
	}

	return p.Equal(p.Truncate(2))
}

// CreateProduct validates the input and stores the product with its variants in one transaction.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}

	draft := productDraft{
		name:       strings.TrimSpace(input.Name),
		price:      input.Price,
		typ:        entity.ProductType(strings.TrimSpace(string(input.Type))),
		categoryID: input.CategoryID,
		variants:   cleanVariantNames(input.Variants),
	}
	if err := draft.validate(); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        draft.name,
		Description: trimOptional(input.Description),
		Price:       *draft.price,
		Image:       trimOptional(input.Image),
		Type:        draft.typ,
		CategoryID:  draft.categoryID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := ensureCategoryExists(ctx, repoFactory.NewCategoryRepository(), draft.categoryID); err != nil {
			return err
		}

		productRepo := repoFactory.NewProductRepository()
		if err := productRepo.CreateProduct(ctx, product); err != nil {
			return mapProductWriteError(err, "failed to create product")
		}

		variants, err := productRepo.CreateVariants(ctx, product.ID, draft.variants)
		if err != nil {
			return errors.Wrap(err, "failed to create product variants")
		}
		product.Variants = variants

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product created",
		slog.String("productID", product.ID.String()),
		slog.String("categoryID", product.CategoryID.String()),
		slog.Int("variants", len(product.Variants)),
	)
	srv.menuChanges.publish(ctx, srv.log(ctx), service.MenuChangeProduct, service.MenuChangeCreated, product.ID)

	return product, nil
}

// GetProduct retrieves a product with its variants.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if id == uuid.Nil {
		return nil, domainerrors.ErrProductIDRequired
	}

	product, err := srv.productRepo.FindProductByID(ctx, id)
	if err != nil {
		return nil, mapProductLookupError(err)
	}

	return product, nil
}

// ListProducts returns products ordered by name, optionally limited to one category.
func (srv *productService) ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListProducts(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct applies a partial update. Supplied variants, or a resulting single type,
// replace the stored variant set. The resulting product is validated before any write.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if id == uuid.Nil {
		return nil, domainerrors.ErrProductIDRequired
	}
	if input == nil {
		input = &usecase.UpdateProductInput{}
	}

	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		current, err := productRepo.FindProductByID(ctx, id)
		if err != nil {
			return mapProductLookupError(err)
		}

		next, draft, replaceVariants := applyProductPatch(current, input)
		if err := draft.validate(); err != nil {
			return err
		}

		if next.CategoryID != current.CategoryID {
			if err := ensureCategoryExists(ctx, repoFactory.NewCategoryRepository(), next.CategoryID); err != nil {
				return err
			}
		}

		if err := productRepo.UpdateProduct(ctx, next); err != nil {
			return mapProductWriteError(err, "failed to update product")
		}

		if replaceVariants {
			if err := productRepo.DeleteVariantsByProduct(ctx, id); err != nil {
				return errors.Wrap(err, "failed to delete product variants")
			}
			if next.Type == entity.ProductTypeMultiple {
				if _, err := productRepo.CreateVariants(ctx, id, draft.variants); err != nil {
					return errors.Wrap(err, "failed to create product variants")
				}
			}
		}

		updated, err = productRepo.FindProductByID(ctx, id)
		if err != nil {
			return mapProductLookupError(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product updated",
		slog.String("productID", id.String()),
		slog.Bool("variantsReplaced", input.Variants != nil || updated.Type == entity.ProductTypeSingle),
	)
	srv.menuChanges.publish(ctx, srv.log(ctx), service.MenuChangeProduct, service.MenuChangeUpdated, id)

	return updated, nil
}

// DeleteProduct removes the product's variants and then the product in one transaction.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domainerrors.ErrProductIDRequired
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		if err := productRepo.DeleteVariantsByProduct(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete product variants")
		}

		if err := productRepo.DeleteProduct(ctx, id); err != nil {
			return mapProductLookupError(err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Product deleted", slog.String("productID", id.String()))
	srv.menuChanges.publish(ctx, srv.log(ctx), service.MenuChangeProduct, service.MenuChangeDeleted, id)

	return nil
}

// applyProductPatch merges input over current and reports whether the variant set must be rewritten.
func applyProductPatch(current *entity.Product, input *usecase.UpdateProductInput) (*entity.Product, productDraft, bool) {
	next := *current
	next.Variants = nil

	if input.Name != nil {
		next.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		next.Description = trimOptional(input.Description)
	}
	if input.Price != nil {
		next.Price = *input.Price
	}
	if input.Image != nil {
		next.Image = trimOptional(input.Image)
	}
	if input.Type != nil {
		next.Type = entity.ProductType(strings.TrimSpace(string(*input.Type)))
	}
	if input.CategoryID != nil {
		next.CategoryID = *input.CategoryID
	}

	price := next.Price
	draft := productDraft{
		name:       next.Name,
		price:      &price,
		typ:        next.Type,
		categoryID: next.CategoryID,
	}

	switch {
	case input.Variants != nil:
		draft.variants = cleanVariantNames(*input.Variants)
	case next.Type == entity.ProductTypeSingle:
		draft.variants = nil
	default:
		draft.variants = current.VariantNames()
	}

	replaceVariants := input.Variants != nil || (next.Type == entity.ProductTypeSingle && len(current.Variants) > 0)

	return &next, draft, replaceVariants
}

func ensureCategoryExists(ctx context.Context, categoryRepo repository.CategoryRepository, id uuid.UUID) error {
	if _, err := categoryRepo.FindCategoryByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrProductCategoryNotFound
		}

		return errors.Wrap(err, "failed to find product category")
	}

	return nil
}

// cleanVariantNames trims names and drops blanks, keeping the given order.
func cleanVariantNames(names []string) []string {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			cleaned = append(cleaned, name)
		}
	}

	return cleaned
}

// trimOptional trims an optional text field; blank values become nil.
func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func mapProductLookupError(err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}

	return errors.Wrap(err, "failed to find product")
}

func mapProductWriteError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	case errors.Is(err, repository.ErrDuplicateProduct):
		return domainerrors.ErrProductAlreadyExists
	case errors.Is(err, repository.ErrProductCategoryMissing):
		return domainerrors.ErrProductCategoryNotFound
	default:
		return errors.Wrap(err, message)
	}
}
