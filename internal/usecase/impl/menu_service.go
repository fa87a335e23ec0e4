package impl

import (
	"context"
	"log/slog"

	deliverycontext "menuboard/internal/delivery/context"
	"menuboard/internal/domain/entity"
	"menuboard/internal/domain/repository"
	"menuboard/internal/domain/service"
	"menuboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// menuService implements the MenuUsecase interface.
type menuService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	cache        service.MenuCache
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// MenuServiceParams holds dependencies for MenuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	MenuCache    service.MenuCache
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	return &menuService{
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		cache:        params.MenuCache,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *menuService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetPublicMenu serves the cached menu when present and rebuilds it from the store otherwise.
// Cache errors are logged and bypassed.
func (srv *menuService) GetPublicMenu(ctx context.Context) (*entity.PublicMenu, error) {
	// The generation is read before the store so a concurrent invalidation orphans what we build.
	generation, cacheable := srv.cacheGeneration(ctx)
	if cacheable {
		menu, ok, err := srv.cache.GetPublicMenu(ctx, generation)
		switch {
		case err != nil:
			srv.log(ctx).Warn("Failed to read cached menu", slog.Any("error", err))
		case ok:
			return menu, nil
		}
	}

	menu, err := srv.buildPublicMenu(ctx)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := srv.cache.SetPublicMenu(ctx, generation, menu); err != nil {
			srv.log(ctx).Warn("Failed to cache menu", slog.Any("error", err))
		}
	}

	return menu, nil
}

func (srv *menuService) cacheGeneration(ctx context.Context) (int64, bool) {
	if srv.cache == nil {
		return 0, false
	}

	generation, err := srv.cache.Generation(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to read menu generation", slog.Any("error", err))

		return 0, false
	}

	return generation, true
}

func (srv *menuService) buildPublicMenu(ctx context.Context) (*entity.PublicMenu, error) {
	categories, err := srv.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu categories")
	}

	products, err := srv.productRepo.ListProducts(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu products")
	}

	byCategory := make(map[uuid.UUID][]*entity.Product, len(categories))
	for _, product := range products {
		if product.Variants == nil {
			product.Variants = []*entity.ProductVariant{}
		}
		byCategory[product.CategoryID] = append(byCategory[product.CategoryID], product)
	}

	menu := &entity.PublicMenu{Sections: make([]entity.MenuSection, 0, len(categories))}
	for _, category := range categories {
		sectionProducts := byCategory[category.ID]
		if sectionProducts == nil {
			sectionProducts = []*entity.Product{}
		}
		menu.Sections = append(menu.Sections, entity.MenuSection{
			Category: category,
			Products: sectionProducts,
		})
	}

	return menu, nil
}

// GetMenuQRCode renders a PNG QR code pointing at the public menu.
func (srv *menuService) GetMenuQRCode(ctx context.Context, table string) ([]byte, error) {
	png, err := srv.qrService.GenerateMenuQR(table)
	if err != nil {
		srv.log(ctx).Error("Failed to generate menu QR code", slog.String("table", table), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate menu QR code")
	}

	return png, nil
}
