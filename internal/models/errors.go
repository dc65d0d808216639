package models

import (
	"errors"
	"fmt"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

func (e ErrorDetail) Unwrap() error {
	return e.ErrorMessage
}

const (
	ErrKeyDatabaseError          = "database_error"
	ErrKeyInternalServerError    = "internal_server_error"
	ErrKeyValidationError        = "validation_error"
	ErrKeyDataNotFound           = "data_not_found"
	ErrKeyLoanNotFound           = "loan_not_found"
	ErrKeyLoanNotPending         = "loan_not_pending"
	ErrKeyLoanConflict           = "loan_conflict"
	ErrKeyReasonRequired         = "reason_required"
	ErrKeyMemberAlreadyExist     = "member_already_exist"
	ErrKeyInvalidFormatDate      = "invalid_format_date"
	ErrKeyInvalidTransactionType = "invalid_transaction_type"
	ErrKeyInvalidLoanStatus      = "invalid_loan_status"
	ErrKeyUnauthorized           = "unauthorized"
	ErrKeyForbidden              = "forbidden"
	ErrKeyServiceUnavailable     = "service_unavailable"
	ErrKeyMemberIdRequired       = "memberId_required"
	ErrKeyMemberIdMax            = "memberId_max"
	ErrKeyMemberIdFormat         = "memberId_memberid"
	ErrKeyFullNameRequired       = "fullName_required"
	ErrKeyFullNameBlank          = "fullName_nonblank"
	ErrKeyPhoneNumberRequired    = "phoneNumber_required"
	ErrKeyPhoneNumberPhone       = "phoneNumber_phone"
	ErrKeyOpeningCreditNegative  = "opening_credit_negative"
)

var MapErrors = MapErrs{
	ErrKeyDatabaseError:          {Code: "DATABASE_ERROR", ErrorMessage: errors.New("database error")},
	ErrKeyInternalServerError:    {Code: "INTERNAL_SERVER_ERROR", ErrorMessage: errors.New("internal server error")},
	ErrKeyValidationError:        {Code: "VALIDATION_ERROR", ErrorMessage: errors.New("invalid request")},
	ErrKeyDataNotFound:           {Code: "DATA_NOT_FOUND", ErrorMessage: errors.New("data not found")},
	ErrKeyLoanNotFound:           {Code: "LOAN_NOT_FOUND", ErrorMessage: errors.New("loan request not found")},
	ErrKeyLoanNotPending:         {Code: "LOAN_NOT_PENDING", ErrorMessage: errors.New("loan request is no longer pending")},
	ErrKeyLoanConflict:           {Code: "LOAN_CONFLICT", ErrorMessage: errors.New("loan request was modified concurrently, retry the request")},
	ErrKeyReasonRequired:         {Code: "REASON_REQUIRED", ErrorMessage: errors.New("rejection reason is required")},
	ErrKeyMemberAlreadyExist:     {Code: "MEMBER_ALREADY_EXIST", ErrorMessage: errors.New("member id already enrolled")},
	ErrKeyInvalidFormatDate:      {Code: "INVALID_FORMAT_DATE", ErrorMessage: errors.New("date format must be YYYY-MM-DD")},
	ErrKeyInvalidTransactionType: {Code: "INVALID_TRANSACTION_TYPE", ErrorMessage: errors.New("invalid transaction type")},
	ErrKeyInvalidLoanStatus:      {Code: "INVALID_LOAN_STATUS", ErrorMessage: errors.New("invalid loan status")},
	ErrKeyUnauthorized:           {Code: "UNAUTHORIZED", ErrorMessage: errors.New("unauthorized")},
	ErrKeyForbidden:              {Code: "FORBIDDEN", ErrorMessage: errors.New("administrator access required")},
	ErrKeyServiceUnavailable:     {Code: "SERVICE_UNAVAILABLE", ErrorMessage: errors.New("service temporarily unavailable")},
	ErrKeyMemberIdRequired:       {Code: "MEMBER_ID_REQUIRED", ErrorMessage: errors.New("memberId is required")},
	ErrKeyMemberIdMax:            {Code: "MEMBER_ID_TOO_LONG", ErrorMessage: errors.New("memberId must be at most 32 characters")},
	ErrKeyMemberIdFormat:         {Code: "MEMBER_ID_INVALID", ErrorMessage: errors.New("memberId may contain letters, digits and dashes only")},
	ErrKeyFullNameRequired:       {Code: "FULL_NAME_REQUIRED", ErrorMessage: errors.New("fullName is required")},
	ErrKeyFullNameBlank:          {Code: "FULL_NAME_REQUIRED", ErrorMessage: errors.New("fullName is required")},
	ErrKeyPhoneNumberRequired:    {Code: "PHONE_NUMBER_REQUIRED", ErrorMessage: errors.New("phoneNumber is required")},
	ErrKeyPhoneNumberPhone:       {Code: "PHONE_NUMBER_INVALID", ErrorMessage: errors.New("phoneNumber must contain digits only")},
	ErrKeyOpeningCreditNegative:  {Code: "BALANCE_NEGATIVE", ErrorMessage: errors.New("opening credit must not be negative")},
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}
