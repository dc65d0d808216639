package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	"github.com/unionconnect/go-wallet-admin/internal/models"
	"github.com/unionconnect/go-wallet-admin/internal/monitoring"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=sql_user.go -destination=mock/sql_user.go -package=mock

// UserRepository reads and credits wallet holder accounts stored in "users".
type UserRepository interface {
	GetByID(ctx context.Context, id string) (models.Account, error)
	GetAll(ctx context.Context) ([]models.Account, error)
	GetBalance(ctx context.Context, id string) (models.AccountBalance, error)

	// IncrementBalance adds amount to the balance only if the stored version
	// still equals expectedVersion.
	IncrementBalance(ctx context.Context, id string, amount decimal.Decimal, expectedVersion int64) error
}

type userRepository sqlRepo

var _ UserRepository = (*userRepository)(nil)

func (ur *userRepository) GetByID(ctx context.Context, id string) (result models.Account, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore(models.CollectionUsers.String(), "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ur.r.extractTxRead(ctx)

	err = scanAccount(db.QueryRowContext(ctx, queryUserGetByID, id), &result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = common.ErrAccountNotFound
			return
		}
		err = classifyError(err)
		return
	}

	return
}

func (ur *userRepository) GetAll(ctx context.Context) (result []models.Account, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore(models.CollectionUsers.String(), "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ur.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryUserGetAll)
	if err != nil {
		err = classifyError(err)
		return
	}
	defer rows.Close()

	result = []models.Account{}
	for rows.Next() {
		var account models.Account
		if err = scanAccount(rows, &account); err != nil {
			return nil, classifyError(err)
		}
		result = append(result, account)
	}

	if err = rows.Err(); err != nil {
		return nil, classifyError(err)
	}

	return
}

func (ur *userRepository) GetBalance(ctx context.Context, id string) (result models.AccountBalance, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore(models.CollectionUsers.String(), "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ur.r.extractTxRead(ctx)

	result.AccountID = id
	err = db.QueryRowContext(ctx, queryUserGetBalance, id).Scan(&result.Balance, &result.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = common.ErrAccountNotFound
			return
		}
		err = classifyError(err)
		return
	}

	return
}

func (ur *userRepository) IncrementBalance(ctx context.Context, id string, amount decimal.Decimal, expectedVersion int64) (err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore(models.CollectionUsers.String(), "UPDATE"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ur.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryUserIncrementBalance, amount, id, expectedVersion)
	if err != nil {
		err = classifyError(err)
		return
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		err = classifyError(err)
		return
	}

	if affectedRows == 0 {
		err = common.ErrBalanceVersionMove
		return
	}

	return
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner, account *models.Account) error {
	return row.Scan(
		&account.ID,
		&account.MemberID,
		&account.FullName,
		&account.PhoneNumber,
		&account.Email,
		&account.IsAdmin,
		&account.Balance,
		&account.Version,
		&account.CreatedAt,
	)
}
