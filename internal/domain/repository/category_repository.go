// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"menuboard/internal/domain/entity"
	"menuboard/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for category persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateCategory is returned when a category with the same name already exists.
	ErrDuplicateCategory = errors.New("category already exists")
	// ErrCategoryInUse is returned when a category still owns products.
	ErrCategoryInUse = errors.New("category still owns products")
)

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// FindCategoryByID retrieves a category by its unique ID.
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// ListCategories returns every category ordered by name ascending.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// UpdateCategory renames a category and refreshes its UpdatedAt.
	UpdateCategory(ctx context.Context, category *entity.Category) error

	// DeleteCategory removes a category. It never cascades to products.
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	// CountProductsByCategory returns how many products reference the category.
	CountProductsByCategory(ctx context.Context, id uuid.UUID) (int64, error)
}
