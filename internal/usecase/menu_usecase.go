package usecase

import (
	"context"

	"menuboard/internal/domain/entity"
)

// MenuUsecase defines the interface for the customer-facing menu
type MenuUsecase interface {
	// GetPublicMenu returns categories by name, each with its products by name
	GetPublicMenu(ctx context.Context) (*entity.PublicMenu, error)

	// GetMenuQRCode renders a PNG QR code pointing at the public menu, optionally for a table
	GetMenuQRCode(ctx context.Context, table string) ([]byte, error)
}
