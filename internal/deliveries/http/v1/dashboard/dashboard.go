package dashboard

import (
	nethttp "net/http"
	"strconv"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	"github.com/unionconnect/go-wallet-admin/internal/common/http"
	"github.com/unionconnect/go-wallet-admin/internal/services"

	"github.com/labstack/echo/v4"
)

type dashboardHandler struct {
	dashboardSvc services.DashboardService
}

// New dashboard handler will initialize the dashboard/ resources endpoint
func New(app *echo.Group, dashboardSvc services.DashboardService) {
	handler := dashboardHandler{
		dashboardSvc: dashboardSvc,
	}
	api := app.Group("/dashboard")
	api.GET("/stats", handler.getStats)
	api.GET("/charts", handler.getCharts)
}

// getStats API get dashboard counters
// @Summary Get dashboard counters
// @Description Totals derived from the latest aggregate snapshot
// @Tags Dashboard
// @Produce  json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} models.StatsResponse
// @Failure 401 {object} http.RestErrorResponseModel
// @Failure 403 {object} http.RestErrorResponseModel
// @Router /v1/dashboard/stats [get]
func (h *dashboardHandler) getStats(c echo.Context) error {
	return http.RestSuccessResponse(c, nethttp.StatusOK, h.dashboardSvc.GetStats(c.Request().Context()))
}

// getCharts API get dashboard chart series
// @Summary Get dashboard chart series
// @Description Daily volume of the last N days, transaction type distribution and admin/member split
// @Tags Dashboard
// @Produce  json
// @Param days query int false "number of days, default 7"
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} models.ChartsResponse
// @Failure 400 {object} http.RestErrorResponseModel
// @Router /v1/dashboard/charts [get]
func (h *dashboardHandler) getCharts(c echo.Context) error {
	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return http.RestServiceErrorResponse(c, common.ErrInvalidDays)
		}
		days = v
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, h.dashboardSvc.GetCharts(c.Request().Context(), days))
}
