package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	"github.com/unionconnect/go-wallet-admin/internal/models"
	"github.com/unionconnect/go-wallet-admin/internal/monitoring"
)

//go:generate mockgen -source=sql_loan_request.go -destination=mock/sql_loan_request.go -package=mock

type LoanRequestRepository interface {
	GetByID(ctx context.Context, id string) (models.LoanRequest, error)
	GetList(ctx context.Context, filter models.LoanFilter) ([]models.LoanRequest, error)

	// MarkApproved moves a pending loan to approved. A loan that is no longer
	// pending when the update runs fails with common.ErrLoanStatusChanged.
	MarkApproved(ctx context.Context, id, approverID string) error

	// MarkRejected moves a pending loan to rejected. It returns
	// common.ErrNoRowsAffected when no pending loan with id exists.
	MarkRejected(ctx context.Context, id, rejecterID, reason string) error
}

type loanRequestRepository sqlRepo

var _ LoanRequestRepository = (*loanRequestRepository)(nil)

func (lr *loanRequestRepository) GetByID(ctx context.Context, id string) (result models.LoanRequest, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore(models.CollectionLoanRequests.String(), "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := lr.r.extractTxRead(ctx)

	query, args, err := buildGetLoanRequestByIDQuery(id)
	if err != nil {
		return
	}

	err = scanLoanRequest(db.QueryRowContext(ctx, query, args...), &result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = common.ErrLoanNotFound
			return
		}
		err = classifyError(err)
		return
	}

	return
}

func (lr *loanRequestRepository) GetList(ctx context.Context, filter models.LoanFilter) (result []models.LoanRequest, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore(models.CollectionLoanRequests.String(), "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := lr.r.extractTxRead(ctx)

	query, args, err := buildListLoanRequestQuery(filter)
	if err != nil {
		return
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		err = classifyError(err)
		return
	}
	defer rows.Close()

	result = []models.LoanRequest{}
	for rows.Next() {
		var loan models.LoanRequest
		if err = scanLoanRequest(rows, &loan); err != nil {
			return nil, classifyError(err)
		}
		result = append(result, loan)
	}

	if err = rows.Err(); err != nil {
		return nil, classifyError(err)
	}

	return
}

func (lr *loanRequestRepository) MarkApproved(ctx context.Context, id, approverID string) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore(models.CollectionLoanRequests.String(), "UPDATE"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	affectedRows, err := lr.exec(ctx, queryLoanRequestApprove, approverID, id)
	if err != nil {
		return
	}

	if affectedRows == 0 {
		err = common.ErrLoanStatusChanged
		return
	}

	return
}

func (lr *loanRequestRepository) MarkRejected(ctx context.Context, id, rejecterID, reason string) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore(models.CollectionLoanRequests.String(), "UPDATE"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	affectedRows, err := lr.exec(ctx, queryLoanRequestReject, rejecterID, reason, id)
	if err != nil {
		return
	}

	if affectedRows == 0 {
		err = common.ErrNoRowsAffected
		return
	}

	return
}

func (lr *loanRequestRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	db := lr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, classifyError(err)
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return 0, classifyError(err)
	}

	return affectedRows, nil
}

func scanLoanRequest(row rowScanner, loan *models.LoanRequest) error {
	var (
		status                 string
		approvedAt, rejectedAt sql.NullTime
		approvedBy, rejectedBy sql.NullString
		rejectionReason        sql.NullString
	)

	err := row.Scan(
		&loan.ID,
		&loan.UserID,
		&loan.Amount,
		&loan.Duration,
		&loan.Purpose,
		&status,
		&loan.CreatedAt,
		&approvedAt,
		&approvedBy,
		&rejectedAt,
		&rejectedBy,
		&rejectionReason,
	)
	if err != nil {
		return err
	}

	loan.Status = models.LoanStatus(status)
	loan.ApprovedBy = approvedBy.String
	loan.RejectedBy = rejectedBy.String
	loan.RejectionReason = rejectionReason.String
	if approvedAt.Valid {
		t := approvedAt.Time
		loan.ApprovedAt = &t
	}
	if rejectedAt.Valid {
		t := rejectedAt.Time
		loan.RejectedAt = &t
	}

	return nil
}
