// Package response writes action results in the {success, <key>|error} envelope.
package response

import (
	"net/http"

	"menuboard/internal/action"
	deliverycontext "menuboard/internal/delivery/context"
	domainerrors "menuboard/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// FailureResponse is the body of every failed request.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Result writes an action result with the status derived from its outcome.
func Result[T any](c echo.Context, result action.Result[T]) error {
	setRequestID(c)

	return c.JSON(result.Status(), result)
}

// Fail writes a failure body with the given status.
func Fail(c echo.Context, statusCode int, message string) error {
	setRequestID(c)

	return c.JSON(statusCode, FailureResponse{Success: false, Error: message})
}

// AppError writes a failure for a domain error. Internal errors never expose their message.
func AppError(c echo.Context, err domainerrors.AppError) error {
	if err.HTTPCode() >= http.StatusInternalServerError {
		return InternalServerError(c)
	}

	return Fail(c, err.HTTPCode(), err.Message())
}

// InvalidInput writes the 400 used for unparseable or rule-breaking requests.
func InvalidInput(c echo.Context) error {
	return Fail(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.Message())
}

// Unauthorized writes a 401.
func Unauthorized(c echo.Context) error {
	return Fail(c, http.StatusUnauthorized, domainerrors.ErrUnauthorized.Message())
}

// Forbidden writes a 403.
func Forbidden(c echo.Context) error {
	return Fail(c, http.StatusForbidden, domainerrors.ErrForbidden.Message())
}

// InternalServerError writes a 500 with a generic message.
func InternalServerError(c echo.Context) error {
	return Fail(c, http.StatusInternalServerError, "Internal server error, please try again later.")
}

func setRequestID(c echo.Context) {
	if c.Response().Header().Get(deliverycontext.HeaderXRequestID) == "" {
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, deliverycontext.GetRequestID(c))
	}
}
