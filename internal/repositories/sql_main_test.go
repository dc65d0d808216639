package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/unionconnect/go-wallet-admin/internal/common"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRepository_Atomic(t *testing.T) {
	t.Run("commit when every step succeeds", func(t *testing.T) {
		repo, mock, db := newMockRepository(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(queryUserIncrementBalance)).
			WithArgs(decimal.NewFromInt(10), "user-1", int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
			return r.GetUserRepository().IncrementBalance(ctx, "user-1", decimal.NewFromInt(10), 3)
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback when a step fails", func(t *testing.T) {
		repo, mock, db := newMockRepository(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(queryUserIncrementBalance)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
			return r.GetUserRepository().IncrementBalance(ctx, "user-1", decimal.NewFromInt(10), 3)
		})
		assert.ErrorIs(t, err, common.ErrBalanceVersionMove)
		assert.True(t, common.IsRetryable(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("serialization failure on commit is a conflict", func(t *testing.T) {
		repo, mock, db := newMockRepository(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001"})

		err := repo.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
			return nil
		})
		assert.ErrorIs(t, err, common.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure is unavailable", func(t *testing.T) {
		repo, mock, db := newMockRepository(t)
		defer db.Close()

		mock.ExpectBegin().WillReturnError(&pq.Error{Code: "08006"})

		called := false
		err := repo.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, common.ErrUnavailable)
		assert.False(t, called)
	})

	t.Run("panic rolls back", func(t *testing.T) {
		repo, mock, db := newMockRepository(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := repo.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
			panic("boom")
		})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nested unit joins the outer transaction", func(t *testing.T) {
		repo, mock, db := newMockRepository(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		err := repo.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
			return r.Atomic(ctx, func(ctx context.Context, r SQLRepository) error {
				_, ok := txFromContext(ctx)
				assert.True(t, ok)
				return nil
			})
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
