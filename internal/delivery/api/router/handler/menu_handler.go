package handler

import (
	"log/slog"
	"net/http"

	"menuboard/internal/action"
	"menuboard/internal/delivery/api/response"
	deliverycontext "menuboard/internal/delivery/context"
	"menuboard/internal/infra/realtime"

	"github.com/labstack/echo/v4"
	"menuboard/internal/errors"
	"go.uber.org/fx"
)

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	Actions *action.Actions
	Hub     *realtime.Hub
	Logger  *slog.Logger
}

// MenuHandler serves the customer-facing menu.
type MenuHandler struct {
	actions *action.Actions
	hub     *realtime.Hub
	logger  *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler
func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{actions: params.Actions, hub: params.Hub, logger: params.Logger}
}

// qrQuery is the query of a QR code request.
type qrQuery struct {
	Table string `query:"table" validate:"omitempty,table_label"`
}

// GetMenu handles GET /menu
func (h *MenuHandler) GetMenu(c echo.Context) error {
	return response.Result(c, h.actions.GetPublicMenu(c.Request().Context()))
}

// GetQRCode handles GET /menu/qrcode?table= and returns a PNG.
func (h *MenuHandler) GetQRCode(c echo.Context) error {
	var query qrQuery
	if ok, err := bindInput(c, h.logger, &query); !ok {
		return err
	}

	result := h.actions.GetMenuQRCode(c.Request().Context(), query.Table)
	if !result.Success() {
		return response.Result(c, result)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", result.Data())
}

// Subscribe handles GET /menu/ws and streams menu.updated notices.
func (h *MenuHandler) Subscribe(c echo.Context) error {
	err := h.hub.ServeWS(c.Response(), c.Request())
	if errors.Is(err, realtime.ErrDisabled) {
		return response.Fail(c, http.StatusNotFound, "Live menu updates are not available.")
	}
	if err != nil {
		// The upgrader has already answered the client.
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Info("Websocket upgrade rejected", slog.Any("error", err))
	}

	return nil
}
