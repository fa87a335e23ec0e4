package usecase

import (
	"context"

	"menuboard/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryUsecase defines the interface for menu category management
type CategoryUsecase interface {
	// CreateCategory trims and stores a new uniquely named category
	CreateCategory(ctx context.Context, name string) (*entity.Category, error)

	// GetCategory retrieves a category by ID
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// ListCategories returns every category ordered by name
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// UpdateCategory renames a category
	UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*entity.Category, error)

	// DeleteCategory removes a category that owns no products
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
