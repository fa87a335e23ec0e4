package handler

import (
	"log/slog"

	"menuboard/internal/action"
	"menuboard/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// CategoryHandler serves the admin category endpoints.
type CategoryHandler struct {
	actions *action.Actions
	logger  *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params Params) *CategoryHandler {
	return &CategoryHandler{actions: params.Actions, logger: params.Logger}
}

// ListCategories handles GET /admin/categories
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	return response.Result(c, h.actions.ListCategories(c.Request().Context()))
}

// CreateCategory handles POST /admin/categories
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var input action.CategoryInput
	if ok, err := bindInput(c, h.logger, &input); !ok {
		return err
	}

	return response.Result(c, h.actions.CreateCategory(c.Request().Context(), input))
}

// GetCategory handles GET /admin/categories/:id
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	return response.Result(c, h.actions.GetCategory(c.Request().Context(), c.Param("id")))
}

// UpdateCategory handles PUT /admin/categories/:id
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	var input action.CategoryInput
	if ok, err := bindInput(c, h.logger, &input); !ok {
		return err
	}

	return response.Result(c, h.actions.UpdateCategory(c.Request().Context(), c.Param("id"), input))
}

// DeleteCategory handles DELETE /admin/categories/:id
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	return response.Result(c, h.actions.DeleteCategory(c.Request().Context(), c.Param("id")))
}
