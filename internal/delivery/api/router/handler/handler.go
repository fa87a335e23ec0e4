// Package handler binds HTTP requests to menu actions.
package handler

import (
	"log/slog"

	"menuboard/internal/action"
	"menuboard/internal/delivery/api/response"
	deliverycontext "menuboard/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Params holds the dependencies shared by every handler, injected by Fx.
type Params struct {
	fx.In

	Actions *action.Actions
	Logger  *slog.Logger
}

// bindInput binds and validates the request into input. It writes the 400 itself and reports
// false when the request is unusable.
func bindInput(c echo.Context, logger *slog.Logger, input any) (bool, error) {
	if err := c.Bind(input); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), logger).
			Info("Rejected request body", slog.Any("error", err))

		return false, response.InvalidInput(c)
	}
	if err := c.Validate(input); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), logger).
			Info("Rejected request fields", slog.Any("error", err))

		return false, response.InvalidInput(c)
	}

	return true, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Result(c, action.Ok("status", "ok"))
}
