package transaction

import (
	nethttp "net/http"

	"github.com/unionconnect/go-wallet-admin/internal/common/http"
	"github.com/unionconnect/go-wallet-admin/internal/models"
	"github.com/unionconnect/go-wallet-admin/internal/services"

	"github.com/labstack/echo/v4"
)

type transactionHandler struct {
	dashboardSvc services.DashboardService
}

// New transaction handler will initialize the transactions/ resources endpoint
func New(app *echo.Group, dashboardSvc services.DashboardService) {
	handler := transactionHandler{
		dashboardSvc: dashboardSvc,
	}
	api := app.Group("/transactions")
	api.GET("", handler.getAllTransaction)
}

// getAllTransaction API get recent transactions
// @Summary Get recent ledger entries
// @Description Filters apply to the recent-transaction window of the aggregate snapshot
// @Tags Transactions
// @Produce  json
// @Param type query string false "transaction type or all"
// @Param date query string false "calendar date YYYY-MM-DD"
// @Param memberId query string false "member id or account id substring"
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} http.RestTotalRowResponseModel{contents=[]models.TransactionResponse}
// @Failure 400 {object} http.RestErrorResponseModel
// @Router /v1/transactions [get]
func (h *transactionHandler) getAllTransaction(c echo.Context) error {
	var filter models.TransactionFilter
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filter); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	data, err := h.dashboardSvc.GetTransactions(c.Request().Context(), filter)
	if err != nil {
		return http.RestServiceErrorResponse(c, err)
	}

	return http.RestSuccessResponseListWithTotalRows(c, data, len(data))
}
