// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"menuboard/internal/delivery/api/middleware"
	"menuboard/internal/delivery/api/router/handler"
	"menuboard/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MetricsEndpoint is the optional /metrics handler.
type MetricsEndpoint interface {
	Enabled() bool
	Handler() http.Handler
}

type RouterParams struct {
	fx.In

	CategoryHandler  *handler.CategoryHandler
	ProductHandler   *handler.ProductHandler
	AnalyticsHandler *handler.AnalyticsHandler
	MenuHandler      *handler.MenuHandler
	CartHandler      *handler.CartHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Metrics          MetricsEndpoint `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	categoryHandler  *handler.CategoryHandler
	productHandler   *handler.ProductHandler
	analyticsHandler *handler.AnalyticsHandler
	menuHandler      *handler.MenuHandler
	cartHandler      *handler.CartHandler
	authMiddleware   *middleware.AuthMiddleware
	metrics          MetricsEndpoint
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		categoryHandler:  params.CategoryHandler,
		productHandler:   params.ProductHandler,
		analyticsHandler: params.AnalyticsHandler,
		menuHandler:      params.MenuHandler,
		cartHandler:      params.CartHandler,
		authMiddleware:   params.AuthMiddleware,
		metrics:          params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metrics != nil && r.metrics.Enabled() {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	apiV1 := e.Group("/api/v1")

	// Public menu routes
	menuGroup := apiV1.Group("/menu")
	{
		menuGroup.GET("", r.menuHandler.GetMenu)
		menuGroup.GET("/qrcode", r.menuHandler.GetQRCode)
		menuGroup.GET("/ws", r.menuHandler.Subscribe)
	}

	// Customer interaction tracking
	analyticsGroup := apiV1.Group("/analytics")
	{
		analyticsGroup.POST("/views", r.analyticsHandler.RecordView)
		analyticsGroup.POST("/clicks", r.analyticsHandler.RecordClick)
		analyticsGroup.POST("/add-to-cart", r.analyticsHandler.RecordAddToCart)
	}

	apiV1.POST("/cart/quote", r.cartHandler.QuoteCart)

	// Admin routes: staff may read, only admins may change the menu
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	canRead := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleStaff)
	canWrite := r.authMiddleware.RequireRole(entity.RoleAdmin)

	categoriesGroup := adminGroup.Group("/categories")
	{
		categoriesGroup.GET("", r.categoryHandler.ListCategories, canRead)
		categoriesGroup.POST("", r.categoryHandler.CreateCategory, canWrite)
		categoriesGroup.GET("/:id", r.categoryHandler.GetCategory, canRead)
		categoriesGroup.PUT("/:id", r.categoryHandler.UpdateCategory, canWrite)
		categoriesGroup.DELETE("/:id", r.categoryHandler.DeleteCategory, canWrite)
	}

	productsGroup := adminGroup.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts, canRead)
		productsGroup.POST("", r.productHandler.CreateProduct, canWrite)
		productsGroup.GET("/:id", r.productHandler.GetProduct, canRead)
		productsGroup.PATCH("/:id", r.productHandler.UpdateProduct, canWrite)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct, canWrite)
	}

	adminGroup.GET("/analytics/summary", r.analyticsHandler.GetSummary, canRead)
}
