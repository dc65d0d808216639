package repositories

import (
	"context"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	"github.com/unionconnect/go-wallet-admin/internal/models"
	"github.com/unionconnect/go-wallet-admin/internal/monitoring"
)

//go:generate mockgen -source=sql_transaction.go -destination=mock/sql_transaction.go -package=mock

// TransactionRepository stores ledger entries. Entries are never updated.
type TransactionRepository interface {
	// Create inserts the entry with the server time as createdAt and returns it.
	Create(ctx context.Context, in models.Transaction) (models.Transaction, error)

	// GetRecent returns at most limit entries, newest first.
	GetRecent(ctx context.Context, limit int) ([]models.Transaction, error)
}

type transactionRepository sqlRepo

var _ TransactionRepository = (*transactionRepository)(nil)

func (tr *transactionRepository) Create(ctx context.Context, in models.Transaction) (result models.Transaction, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore(models.CollectionTransactions.String(), "INSERT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if in.ID == "" {
		err = common.ErrIDEmpty
		return
	}

	db := tr.r.extractTxWrite(ctx)

	result = in
	err = db.QueryRowContext(ctx, queryTransactionCreate,
		in.ID,
		in.UserID,
		in.Type.String(),
		in.Amount,
		in.BalanceBefore,
		in.BalanceAfter,
		in.Description,
		in.Status.String(),
	).Scan(&result.CreatedAt)
	if err != nil {
		err = classifyError(err)
		return
	}

	return
}

func (tr *transactionRepository) GetRecent(ctx context.Context, limit int) (result []models.Transaction, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore(models.CollectionTransactions.String(), "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxRead(ctx)

	query, args, err := buildListRecentTransactionQuery(limit)
	if err != nil {
		return
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		err = classifyError(err)
		return
	}
	defer rows.Close()

	result = []models.Transaction{}
	for rows.Next() {
		var (
			trx            models.Transaction
			txType, status string
		)
		err = rows.Scan(
			&trx.ID,
			&trx.UserID,
			&txType,
			&trx.Amount,
			&trx.BalanceBefore,
			&trx.BalanceAfter,
			&trx.Description,
			&status,
			&trx.CreatedAt,
		)
		if err != nil {
			return nil, classifyError(err)
		}
		trx.Type = models.TransactionType(txType)
		trx.Status = models.TransactionStatus(status)
		result = append(result, trx)
	}

	if err = rows.Err(); err != nil {
		return nil, classifyError(err)
	}

	return
}
