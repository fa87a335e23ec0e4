package middleware

import (
	"log/slog"
	"strings"

	"menuboard/internal/delivery/api/response"
	deliverycontext "menuboard/internal/delivery/context"
	"menuboard/internal/domain/constants"
	"menuboard/internal/domain/entity"
	"menuboard/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddleware verifies admin bearer tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService, logger: params.Logger}
}

// Authenticate rejects requests without a valid bearer token with 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return response.Unauthorized(c)
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Info("Rejected admin token", slog.Any("error", err))

			return response.Unauthorized(c)
		}

		c.Set(constants.ContextKeySubject, claims.Subject)
		c.Set(constants.ContextKeyRoles, entity.RolesFromStrings(claims.Roles))

		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("subject", claims.Subject))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}

// RequireRole allows the request when the token carries any of roles; otherwise 403.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			granted, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c)
			}

			for _, role := range roles {
				if granted.Contains(role) {
					return next(c)
				}
			}

			return response.Forbidden(c)
		}
	}
}

// GetSubject returns the token subject set by Authenticate.
func GetSubject(c echo.Context) (string, bool) {
	subject, ok := c.Get(constants.ContextKeySubject).(string)

	return subject, ok && subject != ""
}

// GetRoles returns the roles set by Authenticate.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(constants.ContextKeyRoles).(entity.Roles)

	return roles, ok
}
