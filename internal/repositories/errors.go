package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"syscall"

	"github.com/unionconnect/go-wallet-admin/internal/common"

	"github.com/lib/pq"
)

const (
	pqSerializationFailure  = pq.ErrorCode("40001")
	pqDeadlockDetected      = pq.ErrorCode("40P01")
	pqInsufficientPrivilege = pq.ErrorCode("42501")
	pqUniqueViolation       = pq.ErrorCode("23505")
	pqAdminShutdown         = pq.ErrorCode("57P01")
	pqCannotConnectNow      = pq.ErrorCode("57P03")
	pqTooManyConnections    = pq.ErrorCode("53300")

	pqClassConnectionException = pq.ErrorClass("08")
)

// classifyError maps store failures onto the common error taxonomy.
// sql.ErrNoRows and already classified errors are returned unchanged.
func classifyError(err error) error {
	if err == nil || errors.Is(err, sql.ErrNoRows) || isClassified(err) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == pqSerializationFailure, pqErr.Code == pqDeadlockDetected:
			return fmt.Errorf("%w: %w", common.ErrConflict, err)
		case pqErr.Code == pqInsufficientPrivilege:
			return fmt.Errorf("%w: %w", common.ErrPermissionDenied, err)
		case pqErr.Code == pqUniqueViolation:
			return fmt.Errorf("%w: %w", common.ErrDataExist, err)
		case pqErr.Code == pqAdminShutdown,
			pqErr.Code == pqCannotConnectNow,
			pqErr.Code == pqTooManyConnections,
			pqErr.Code.Class() == pqClassConnectionException:
			return fmt.Errorf("%w: %w", common.ErrUnavailable, err)
		}
		return err
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", common.ErrUnavailable, err)
	}

	return err
}

func isClassified(err error) bool {
	return errors.Is(err, common.ErrConflict) ||
		errors.Is(err, common.ErrPermissionDenied) ||
		errors.Is(err, common.ErrUnavailable) ||
		errors.Is(err, common.ErrPrecondition) ||
		errors.Is(err, common.ErrValidation) ||
		errors.Is(err, common.ErrDataExist)
}
