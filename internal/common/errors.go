package common

import (
	"database/sql"
	"errors"
	"fmt"
)

// Error taxonomy. Every error surfaced by the write path wraps exactly one of
// ErrValidation, ErrPrecondition, ErrConflict, ErrPermissionDenied or ErrUnavailable.
var (
	ErrValidation       = errors.New("validation failed")
	ErrPrecondition     = errors.New("precondition failed")
	ErrConflict         = errors.New("concurrent modification conflict")
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnavailable      = errors.New("store unavailable")
)

var (
	ErrNoRowsAffected      = errors.New("no rows affected")
	ErrDataNotFound        = errors.New("data not found")
	ErrDataExist           = errors.New("data exist")
	ErrInternalServerError = errors.New("internal server error")
	ErrIDEmpty             = errors.New("ID is empty")
	ErrNoRows              = sql.ErrNoRows
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")

	ErrInvalidFormatDate      = fmt.Errorf("%w: invalid format date", ErrValidation)
	ErrInvalidTransactionType = fmt.Errorf("%w: invalid transaction type", ErrValidation)
	ErrNegativeOpeningCredit  = fmt.Errorf("%w: opening credit must not be negative", ErrValidation)
	ErrMissingReason          = fmt.Errorf("%w: rejection reason is required", ErrValidation)
	ErrLoanIDRequired         = fmt.Errorf("%w: loan id is required", ErrValidation)
	ErrInvalidDays            = fmt.Errorf("%w: days must be a non-negative integer", ErrValidation)

	ErrLoanNotFound       = fmt.Errorf("%w: %w: loan request", ErrPrecondition, ErrDataNotFound)
	ErrLoanNotPending     = fmt.Errorf("%w: loan request is not pending", ErrPrecondition)
	ErrLoanInvalidAmount  = fmt.Errorf("%w: loan request: %w", ErrPrecondition, ErrInvalidAmount)
	ErrAccountNotFound    = fmt.Errorf("%w: %w: account", ErrPrecondition, ErrDataNotFound)
	ErrLoanStatusChanged  = fmt.Errorf("%w: loan status changed during approval", ErrConflict)
	ErrBalanceVersionMove = fmt.Errorf("%w: account balance changed during approval", ErrConflict)
	ErrMemberAlreadyExist = fmt.Errorf("%w: member already enrolled", ErrDataExist)

	ErrPrincipalRequired = fmt.Errorf("%w: principal is required", ErrUnauthenticated)
	ErrInvalidToken      = fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	ErrNotAdmin          = fmt.Errorf("%w: principal is not an administrator", ErrPermissionDenied)
)

// IsRetryable reports whether re-invoking the failed operation may succeed.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConflict) || errors.Is(err, ErrUnavailable)
}
