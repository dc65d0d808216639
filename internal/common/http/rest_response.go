package http

import (
	"errors"
	"net/http"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	"github.com/unionconnect/go-wallet-admin/internal/models"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
)

type (
	RestErrorResponseModel struct {
		Status    string      `json:"status" example:"error"`
		Code      interface{} `json:"code"`
		Message   string      `json:"message" example:"error"`
		Retryable bool        `json:"retryable,omitempty"`
	}

	RestTotalRowResponseModel struct {
		Kind      string      `json:"kind" example:"collection"`
		Contents  interface{} `json:"contents"`
		TotalRows int         `json:"total_rows" example:"100"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation error"`
		Errors  interface{} `json:"errors"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

func RestSuccessResponseListWithTotalRows(c echo.Context, data interface{}, totalRows int) error {
	return c.JSON(http.StatusOK, RestTotalRowResponseModel{
		Kind:      "collection",
		Contents:  data,
		TotalRows: totalRows,
	})
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		res.Code = echoErr.Code
		if msg, ok := echoErr.Message.(string); ok {
			res.Message = msg
		}
	}

	var data models.ErrorDetail
	if errors.As(err, &data) {
		res.Code = data.Code
		res.Message = data.ErrorMessage.Error()
	}
	return c.JSON(statusCode, res)
}

func RestErrorValidationResponse(c echo.Context, errors interface{}) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: common.ErrValidation.Error(),
	}
	if data, ok := errors.(*multierror.Error); ok {
		res.Errors = data.Errors
	}

	return c.JSON(http.StatusUnprocessableEntity, res)
}

// RestServiceErrorResponse writes a service error using the status and code
// of its class in the error taxonomy.
func RestServiceErrorResponse(c echo.Context, err error) error {
	var merr *multierror.Error
	if errors.Is(err, common.ErrValidation) && errors.As(err, &merr) {
		return RestErrorValidationResponse(c, merr)
	}

	statusCode := StatusFromError(err)
	if statusCode == http.StatusInternalServerError {
		return RestErrorResponse(c, statusCode, err)
	}

	res := RestErrorResponseModel{
		Status:    "error",
		Code:      statusCode,
		Message:   err.Error(),
		Retryable: common.IsRetryable(err),
	}
	var detail models.ErrorDetail
	if key := errorKey(err); key != "" {
		detail = models.GetErrMap(key)
		res.Code = detail.Code
		res.Message = detail.ErrorMessage.Error()
	} else if errors.As(err, &detail) {
		res.Code = detail.Code
		res.Message = detail.ErrorMessage.Error()
	}

	return c.JSON(statusCode, res)
}

// StatusFromError maps err onto an HTTP status code.
func StatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, common.ErrDataNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrPrecondition),
		errors.Is(err, common.ErrConflict),
		errors.Is(err, common.ErrDataExist):
		return http.StatusConflict
	case errors.Is(err, common.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func errorKey(err error) string {
	switch {
	case errors.Is(err, common.ErrMissingReason):
		return models.ErrKeyReasonRequired
	case errors.Is(err, common.ErrInvalidFormatDate):
		return models.ErrKeyInvalidFormatDate
	case errors.Is(err, common.ErrInvalidTransactionType):
		return models.ErrKeyInvalidTransactionType
	case errors.Is(err, common.ErrNegativeOpeningCredit):
		return models.ErrKeyOpeningCreditNegative
	case errors.Is(err, common.ErrLoanNotFound):
		return models.ErrKeyLoanNotFound
	case errors.Is(err, common.ErrLoanNotPending):
		return models.ErrKeyLoanNotPending
	case errors.Is(err, common.ErrConflict):
		return models.ErrKeyLoanConflict
	case errors.Is(err, common.ErrMemberAlreadyExist):
		return models.ErrKeyMemberAlreadyExist
	case errors.Is(err, common.ErrDataNotFound):
		return models.ErrKeyDataNotFound
	case errors.Is(err, common.ErrUnauthenticated):
		return models.ErrKeyUnauthorized
	case errors.Is(err, common.ErrPermissionDenied):
		return models.ErrKeyForbidden
	case errors.Is(err, common.ErrUnavailable):
		return models.ErrKeyServiceUnavailable
	}
	return ""
}
