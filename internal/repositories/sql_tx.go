package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"
)

// Atomic units run at repeatable read so the balance read and the
// version-guarded increment see the same snapshot.
var atomicTxOptions = &sql.TxOptions{Isolation: sql.LevelRepeatableRead}

type txKey struct{}

// sqlTx is the part of *sql.DB and *sql.Tx the repositories use.
type sqlTx interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func txFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}

func (r *Repository) extractTxWrite(ctx context.Context) sqlTx {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return r.dbWrite
}

type primaryKey struct{}

// ReadFromPrimary routes reads made with the returned context to the write
// database, for callers that must observe a commit they were just told about.
func ReadFromPrimary(ctx context.Context) context.Context {
	return context.WithValue(ctx, primaryKey{}, true)
}

// extractTxRead prefers the enclosing unit so reads inside Atomic observe its
// own writes.
func (r *Repository) extractTxRead(ctx context.Context) sqlTx {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	if primary, _ := ctx.Value(primaryKey{}).(bool); primary {
		return r.dbWrite
	}
	return r.dbRead
}

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	if _, nested := txFromContext(ctx); nested {
		return steps(ctx, r)
	}

	tx, err := r.dbWrite.BeginTx(ctx, atomicTxOptions)
	if err != nil {
		return classifyError(err)
	}
	xlog.Debug(ctx, "[DATABASE.TRANSACTION.BEGIN]")

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			err = fmt.Errorf("panic inside atomic unit: %v", p)
			xlog.Error(ctx, "[DATABASE.TRANSACTION.PANIC]", xlog.Err(err))
			return
		}
		err = finishTx(ctx, tx, err)
	}()

	return steps(context.WithValue(ctx, txKey{}, tx), r)
}

// finishTx commits when stepsErr is nil and rolls back otherwise.
func finishTx(ctx context.Context, tx *sql.Tx, stepsErr error) error {
	if stepsErr != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			stepsErr = fmt.Errorf("%w (rollback: %v)", stepsErr, rbErr)
		}
		xlog.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", xlog.Err(stepsErr))
		return stepsErr
	}

	if err := tx.Commit(); err != nil {
		err = classifyError(err)
		xlog.Warn(ctx, "[DATABASE.TRANSACTION.COMMIT_FAILED]", xlog.Err(err))
		return err
	}

	xlog.Debug(ctx, "[DATABASE.TRANSACTION.COMMIT]")
	return nil
}
