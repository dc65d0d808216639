package loan

import (
	"context"
	nethttp "net/http"
	"time"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	"github.com/unionconnect/go-wallet-admin/internal/common/http"
	"github.com/unionconnect/go-wallet-admin/internal/common/http/middleware"
	"github.com/unionconnect/go-wallet-admin/internal/common/retry"
	"github.com/unionconnect/go-wallet-admin/internal/models"
	"github.com/unionconnect/go-wallet-admin/internal/services"

	"github.com/labstack/echo/v4"
)

type loanHandler struct {
	loanSvc services.LoanService
	retryer retry.Retryer
	timeout time.Duration
}

// New loan handler will initialize the loans/ resources endpoint. Decisions
// are retried through retryer while the store reports a retryable error, all
// attempts bounded by timeout.
func New(app *echo.Group, loanSvc services.LoanService, retryer retry.Retryer, timeout time.Duration) {
	handler := loanHandler{
		loanSvc: loanSvc,
		retryer: retryer,
		timeout: timeout,
	}
	api := app.Group("/loans")
	api.GET("", handler.getAllLoan)
	api.POST("/:loanId/approve", handler.approveLoan)
	api.POST("/:loanId/reject", handler.rejectLoan)
}

// getAllLoan API get loan requests
// @Summary Get loan requests
// @Description Newest first, optionally narrowed by status or owner
// @Tags Loans
// @Produce  json
// @Param status query string false "pending, approved or rejected"
// @Param userId query string false "owner account id"
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} http.RestTotalRowResponseModel{contents=[]models.LoanResponse}
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 503 {object} http.RestErrorResponseModel
// @Router /v1/loans [get]
func (h *loanHandler) getAllLoan(c echo.Context) error {
	var filter models.LoanFilter
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filter); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	loans, err := h.loanSvc.GetList(c.Request().Context(), filter)
	if err != nil {
		return http.RestServiceErrorResponse(c, err)
	}

	data := make([]models.LoanResponse, 0, len(loans))
	for _, l := range loans {
		data = append(data, l.ToModelResponse())
	}

	return http.RestSuccessResponseListWithTotalRows(c, data, len(data))
}

// approveLoan API approve loan request
// @Summary Approve a pending loan request
// @Description Credits the loan amount and records a loan_disbursement ledger entry in one atomic unit
// @Tags Loans
// @Produce  json
// @Param loanId path string true "loan request id"
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} models.ApproveLoanResponse
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 503 {object} http.RestErrorResponseModel
// @Router /v1/loans/{loanId}/approve [post]
func (h *loanHandler) approveLoan(c echo.Context) error {
	ctx, cancel := h.decisionContext(c)
	defer cancel()

	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		return http.RestServiceErrorResponse(c, common.ErrPrincipalRequired)
	}

	loanID := c.Param("loanId")

	var transactionID string
	err := h.retryer.Retry(ctx, func() error {
		id, err := h.loanSvc.ApproveLoan(ctx, loanID, principal.UID)
		if err != nil {
			if !common.IsRetryable(err) {
				return h.retryer.StopRetryWithErr(err)
			}
			return err
		}

		transactionID = id
		return nil
	})
	if err != nil {
		return http.RestServiceErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, models.ApproveLoanResponse{
		Kind:          "loanApproval",
		LoanID:        loanID,
		TransactionID: transactionID,
		Status:        models.LoanStatusApproved.String(),
	})
}

// rejectLoan API reject loan request
// @Summary Reject a pending loan request
// @Description A non-blank reason is required
// @Tags Loans
// @Accept  json
// @Produce  json
// @Param loanId path string true "loan request id"
// @Param body body models.RejectLoanRequest true "body"
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} models.RejectLoanResponse
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Router /v1/loans/{loanId}/reject [post]
func (h *loanHandler) rejectLoan(c echo.Context) error {
	ctx, cancel := h.decisionContext(c)
	defer cancel()

	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		return http.RestServiceErrorResponse(c, common.ErrPrincipalRequired)
	}

	req := new(models.RejectLoanRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	loanID := c.Param("loanId")

	err := h.retryer.Retry(ctx, func() error {
		err := h.loanSvc.RejectLoan(ctx, loanID, principal.UID, req.Reason)
		if err != nil && !common.IsRetryable(err) {
			return h.retryer.StopRetryWithErr(err)
		}
		return err
	})
	if err != nil {
		return http.RestServiceErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, models.RejectLoanResponse{
		Kind:   "loanRejection",
		LoanID: loanID,
		Status: models.LoanStatusRejected.String(),
	})
}

func (h *loanHandler) decisionContext(c echo.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request().Context())
	}
	return context.WithTimeout(c.Request().Context(), h.timeout)
}
