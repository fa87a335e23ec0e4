package service

import (
	"context"

	"menuboard/internal/domain/entity"
)

// MenuCache stores the rendered public menu between mutations.
//
// Entries are keyed by generation. Readers fetch the generation before loading the menu
// and store what they built under that generation, so a menu built from rows read before
// an Invalidate is never served after it.
type MenuCache interface {
	// Generation returns the current menu generation.
	Generation(ctx context.Context) (int64, error)

	// GetPublicMenu returns the menu cached for generation; ok is false on a miss.
	GetPublicMenu(ctx context.Context, generation int64) (menu *entity.PublicMenu, ok bool, err error)

	// SetPublicMenu stores a menu built while generation was current.
	SetPublicMenu(ctx context.Context, generation int64, menu *entity.PublicMenu) error

	// Invalidate advances the generation.
	Invalidate(ctx context.Context) error
}
