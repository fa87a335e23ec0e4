package handler

import (
	"log/slog"
	"strings"
	"time"

	"menuboard/internal/action"
	"menuboard/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves the tracking endpoints and the admin summary.
type AnalyticsHandler struct {
	actions *action.Actions
	logger  *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(params Params) *AnalyticsHandler {
	return &AnalyticsHandler{actions: params.Actions, logger: params.Logger}
}

// RecordView handles POST /analytics/views
func (h *AnalyticsHandler) RecordView(c echo.Context) error {
	var event action.ProductEvent
	if ok, err := bindInput(c, h.logger, &event); !ok {
		return err
	}

	return response.Result(c, h.actions.RecordView(c.Request().Context(), event))
}

// RecordClick handles POST /analytics/clicks
func (h *AnalyticsHandler) RecordClick(c echo.Context) error {
	var event action.ProductEvent
	if ok, err := bindInput(c, h.logger, &event); !ok {
		return err
	}

	return response.Result(c, h.actions.RecordClick(c.Request().Context(), event))
}

// RecordAddToCart handles POST /analytics/add-to-cart
func (h *AnalyticsHandler) RecordAddToCart(c echo.Context) error {
	var event action.AddToCartEvent
	if ok, err := bindInput(c, h.logger, &event); !ok {
		return err
	}

	return response.Result(c, h.actions.RecordAddToCart(c.Request().Context(), event))
}

// GetSummary handles GET /admin/analytics/summary?since=&until= with RFC 3339 bounds.
func (h *AnalyticsHandler) GetSummary(c echo.Context) error {
	since, err := parseTimeParam(c.QueryParam("since"))
	if err != nil {
		return response.InvalidInput(c)
	}
	until, err := parseTimeParam(c.QueryParam("until"))
	if err != nil {
		return response.InvalidInput(c)
	}

	return response.Result(c, h.actions.GetAnalyticsSummary(c.Request().Context(), action.SummaryFilter{
		Since: since,
		Until: until,
	}))
}

func parseTimeParam(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}
