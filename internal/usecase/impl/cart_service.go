package impl

import (
	"context"
	"log/slog"
	"strings"

	"menuboard/config"
	deliverycontext "menuboard/internal/delivery/context"
	"menuboard/internal/domain/entity"
	domainerrors "menuboard/internal/domain/errors"
	"menuboard/internal/domain/repository"
	"menuboard/internal/usecase"
	"menuboard/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	productRepo repository.ProductRepository
	currency    string
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	currency := ""
	if params.Config != nil {
		currency = params.Config.Cart.Currency
	}

	return &cartService{
		productRepo: params.ProductRepo,
		currency:    currency,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// QuoteCart prices every line from the stored product price. Nothing is persisted.
func (srv *cartService) QuoteCart(ctx context.Context, input *usecase.QuoteCartInput) (*entity.CartQuote, error) {
	if input == nil || len(input.Items) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	orderType := input.OrderType
	if orderType == "" {
		orderType = entity.OrderTypeLocal
	}
	if !orderType.IsValid() {
		return nil, domainerrors.ErrCartOrderTypeInvalid
	}

	quote := &entity.CartQuote{
		CustomerName: strings.TrimSpace(input.CustomerName),
		OrderType:    orderType,
		Lines:        make([]entity.CartQuoteLine, 0, len(input.Items)),
		Total:        decimal.Zero,
	}

	for _, item := range input.Items {
		line, err := srv.quoteLine(ctx, item)
		if err != nil {
			return nil, err
		}

		quote.Lines = append(quote.Lines, *line)
		quote.ItemCount += line.Quantity
		quote.Total = quote.Total.Add(line.LineTotal)
	}
	quote.FormattedTotal = util.FormatPrice(quote.Total, srv.currency)

	srv.log(ctx).Debug("Cart quoted",
		slog.Int("lines", len(quote.Lines)),
		slog.Int("items", quote.ItemCount),
		slog.String("total", quote.FormattedTotal),
	)

	return quote, nil
}

func (srv *cartService) quoteLine(ctx context.Context, item usecase.CartItemInput) (*entity.CartQuoteLine, error) {
	if item.ProductID == uuid.Nil {
		return nil, domainerrors.ErrProductIDRequired
	}

	product, err := srv.productRepo.FindProductByID(ctx, item.ProductID)
	if err != nil {
		return nil, mapProductLookupError(err)
	}

	quantity, variants, err := lineQuantity(product, item)
	if err != nil {
		return nil, err
	}

	return &entity.CartQuoteLine{
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    quantity,
		Variants:    variants,
		LineTotal:   product.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// lineQuantity returns the item quantity. For a multiple-type product with variant selections
// it is the sum of the variant quantities.
func lineQuantity(product *entity.Product, item usecase.CartItemInput) (int, []entity.VariantSelection, error) {
	if len(item.Variants) == 0 {
		if item.Quantity <= 0 {
			return 0, nil, domainerrors.ErrCartQuantityInvalid
		}

		return item.Quantity, nil, nil
	}

	if product.Type != entity.ProductTypeMultiple {
		return 0, nil, domainerrors.ErrCartVariantInvalid
	}

	total := 0
	selections := make([]entity.VariantSelection, 0, len(item.Variants))
	for _, selection := range item.Variants {
		name := strings.TrimSpace(selection.Name)
		if !product.HasVariant(name) {
			return 0, nil, domainerrors.ErrCartVariantInvalid
		}
		if selection.Quantity <= 0 {
			return 0, nil, domainerrors.ErrCartQuantityInvalid
		}

		total += selection.Quantity
		selections = append(selections, entity.VariantSelection{Name: name, Quantity: selection.Quantity})
	}

	return total, selections, nil
}
