package repositories

import (
	"github.com/unionconnect/go-wallet-admin/internal/models"

	sq "github.com/Masterminds/squirrel"
)

var loanRequestColumns = []string{
	`"id"`,
	`"userId"`,
	`"amount"`,
	`"duration"`,
	`COALESCE("purpose", '') AS "purpose"`,
	`"status"`,
	`"createdAt"`,
	`"approvedAt"`,
	`"approvedBy"`,
	`"rejectedAt"`,
	`"rejectedBy"`,
	`"rejectionReason"`,
}

var (
	queryLoanRequestApprove = `UPDATE "loan_requests"
	SET "status" = 'approved',
		"approvedAt" = now(),
		"approvedBy" = $1
	WHERE "id" = $2 AND "status" = 'pending';`

	queryLoanRequestReject = `UPDATE "loan_requests"
	SET "status" = 'rejected',
		"rejectedAt" = now(),
		"rejectedBy" = $1,
		"rejectionReason" = $2
	WHERE "id" = $3 AND "status" = 'pending';`
)

func buildGetLoanRequestByIDQuery(id string) (string, []any, error) {
	return sq.Select(loanRequestColumns...).
		From(`"loan_requests"`).
		Where(sq.Eq{`"id"`: id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

func buildListLoanRequestQuery(filter models.LoanFilter) (string, []any, error) {
	query := sq.Select(loanRequestColumns...).
		From(`"loan_requests"`).
		OrderBy(`"createdAt" DESC`, `"id"`).
		PlaceholderFormat(sq.Dollar)

	if filter.Status != "" {
		query = query.Where(sq.Eq{`"status"`: filter.Status.String()})
	}

	if filter.UserID != "" {
		query = query.Where(sq.Eq{`"userId"`: filter.UserID})
	}

	return query.ToSql()
}
