package handler

import (
	"log/slog"

	"menuboard/internal/action"
	"menuboard/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// CartHandler serves cart quotes.
type CartHandler struct {
	actions *action.Actions
	logger  *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params Params) *CartHandler {
	return &CartHandler{actions: params.Actions, logger: params.Logger}
}

// QuoteCart handles POST /cart/quote
func (h *CartHandler) QuoteCart(c echo.Context) error {
	var input action.CartInput
	if ok, err := bindInput(c, h.logger, &input); !ok {
		return err
	}

	return response.Result(c, h.actions.QuoteCart(c.Request().Context(), input))
}
