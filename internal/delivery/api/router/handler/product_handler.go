package handler

import (
	"log/slog"

	"menuboard/internal/action"
	"menuboard/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// ProductHandler serves the admin product endpoints.
type ProductHandler struct {
	actions *action.Actions
	logger  *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params Params) *ProductHandler {
	return &ProductHandler{actions: params.Actions, logger: params.Logger}
}

// ListProducts handles GET /admin/products?categoryId=
func (h *ProductHandler) ListProducts(c echo.Context) error {
	return response.Result(c, h.actions.ListProducts(c.Request().Context(), c.QueryParam("categoryId")))
}

// CreateProduct handles POST /admin/products
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input action.ProductInput
	if ok, err := bindInput(c, h.logger, &input); !ok {
		return err
	}

	return response.Result(c, h.actions.CreateProduct(c.Request().Context(), input))
}

// GetProduct handles GET /admin/products/:id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	return response.Result(c, h.actions.GetProduct(c.Request().Context(), c.Param("id")))
}

// UpdateProduct handles PATCH /admin/products/:id
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var patch action.ProductPatch
	if ok, err := bindInput(c, h.logger, &patch); !ok {
		return err
	}

	return response.Result(c, h.actions.UpdateProduct(c.Request().Context(), c.Param("id"), patch))
}

// DeleteProduct handles DELETE /admin/products/:id
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	return response.Result(c, h.actions.DeleteProduct(c.Request().Context(), c.Param("id")))
}
