package action

import (
	"context"

	"menuboard/internal/domain/entity"
)

// CategoryInput is the body of category create and update requests.
type CategoryInput struct {
	Name string `json:"name" validate:"max=255"`
}

var (
	opCreateCategory = operation{name: "createCategory", key: "category", failure: "Failed to create category.", created: true}
	opUpdateCategory = operation{name: "updateCategory", key: "category", failure: "Failed to update category."}
	opDeleteCategory = operation{name: "deleteCategory", key: "message", failure: "Failed to delete category."}
	opGetCategory    = operation{name: "getCategory", key: "category", failure: "Failed to load category."}
	opListCategories = operation{name: "listCategories", key: "categories", failure: "Failed to load categories."}
)

// CreateCategory adds a category. The name is trimmed and must be unique.
func (a *Actions) CreateCategory(ctx context.Context, input CategoryInput) Result[*entity.Category] {
	return run(ctx, a, opCreateCategory, func() (*entity.Category, error) {
		return a.categories.CreateCategory(ctx, input.Name)
	})
}

// UpdateCategory renames the category identified by id.
func (a *Actions) UpdateCategory(ctx context.Context, id string, input CategoryInput) Result[*entity.Category] {
	return run(ctx, a, opUpdateCategory, func() (*entity.Category, error) {
		return a.categories.UpdateCategory(ctx, parseID(id), input.Name)
	})
}

// DeleteCategory removes a category that owns no products.
func (a *Actions) DeleteCategory(ctx context.Context, id string) Result[string] {
	return run(ctx, a, opDeleteCategory, func() (string, error) {
		if err := a.categories.DeleteCategory(ctx, parseID(id)); err != nil {
			return "", err
		}

		return "Category deleted successfully.", nil
	})
}

// GetCategory loads one category.
func (a *Actions) GetCategory(ctx context.Context, id string) Result[*entity.Category] {
	return run(ctx, a, opGetCategory, func() (*entity.Category, error) {
		return a.categories.GetCategory(ctx, parseID(id))
	})
}

// ListCategories returns every category ordered by name.
func (a *Actions) ListCategories(ctx context.Context) Result[[]*entity.Category] {
	return run(ctx, a, opListCategories, func() ([]*entity.Category, error) {
		categories, err := a.categories.ListCategories(ctx)
		if categories == nil && err == nil {
			categories = []*entity.Category{}
		}

		return categories, err
	})
}
