package account

import (
	"github.com/unionconnect/go-wallet-admin/internal/common/http"
	"github.com/unionconnect/go-wallet-admin/internal/services"

	"github.com/labstack/echo/v4"
)

type accountHandler struct {
	dashboardSvc services.DashboardService
}

// New account handler will initialize the accounts/ resources endpoint
func New(app *echo.Group, dashboardSvc services.DashboardService) {
	handler := accountHandler{
		dashboardSvc: dashboardSvc,
	}
	api := app.Group("/accounts")
	api.GET("", handler.searchAccounts)
}

// searchAccounts API search accounts
// @Summary Search accounts
// @Description Case-insensitive match on full name or member id. An empty query returns every account.
// @Tags Accounts
// @Produce  json
// @Param q query string false "search text"
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} http.RestTotalRowResponseModel{contents=[]models.AccountResponse}
// @Failure 401 {object} http.RestErrorResponseModel
// @Router /v1/accounts [get]
func (h *accountHandler) searchAccounts(c echo.Context) error {
	data := h.dashboardSvc.SearchAccounts(c.Request().Context(), c.QueryParam("q"))
	return http.RestSuccessResponseListWithTotalRows(c, data, len(data))
}
