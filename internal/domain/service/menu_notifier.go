package service

import (
	"context"

	"github.com/google/uuid"
)

// Menu change kinds and actions broadcast to live menu clients.
const (
	MenuChangeCategory = "category"
	MenuChangeProduct  = "product"

	MenuChangeCreated = "created"
	MenuChangeUpdated = "updated"
	MenuChangeDeleted = "deleted"
)

// MenuChange describes a committed mutation of the menu.
type MenuChange struct {
	Kind   string    `json:"kind"`
	Action string    `json:"action"`
	ID     uuid.UUID `json:"id"`
}

// MenuNotifier tells connected clients that the menu changed.
type MenuNotifier interface {
	NotifyMenuChanged(ctx context.Context, change MenuChange)
}
