package action

import (
	"context"

	"menuboard/internal/domain/entity"
)

var (
	opPublicMenu = operation{name: "getPublicMenu", key: "menu", failure: "Failed to load menu data."}
	opMenuQRCode = operation{name: "getMenuQRCode", key: "qrcode", failure: "Failed to generate menu QR code."}
)

// GetPublicMenu returns the customer-facing menu.
func (a *Actions) GetPublicMenu(ctx context.Context) Result[*entity.PublicMenu] {
	return run(ctx, a, opPublicMenu, func() (*entity.PublicMenu, error) {
		return a.menu.GetPublicMenu(ctx)
	})
}

// GetMenuQRCode renders the public menu link as a PNG, optionally for one table.
func (a *Actions) GetMenuQRCode(ctx context.Context, table string) Result[[]byte] {
	return run(ctx, a, opMenuQRCode, func() ([]byte, error) {
		return a.menu.GetMenuQRCode(ctx, table)
	})
}
