package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	"github.com/unionconnect/go-wallet-admin/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRepository_Create(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	in := models.Transaction{
		ID:            "TX-1",
		UserID:        "user-1",
		Type:          models.TransactionTypeLoanDisbursement,
		Amount:        decimal.NewFromInt(500),
		BalanceBefore: decimal.NewFromInt(1000),
		BalanceAfter:  decimal.NewFromInt(1500),
		Description:   "Loan Disbursement: School fees",
		Status:        models.TransactionStatusCompleted,
	}

	t.Run("success", func(t *testing.T) {
		repo, mock, db := newMockRepository(t)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(queryTransactionCreate)).
			WithArgs("TX-1", "user-1", "loan_disbursement", decimal.NewFromInt(500), decimal.NewFromInt(1000),
				decimal.NewFromInt(1500), "Loan Disbursement: School fees", "completed").
			WillReturnRows(sqlmock.NewRows([]string{"createdAt"}).AddRow(createdAt))

		got, err := repo.GetTransactionRepository().Create(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, createdAt, got.CreatedAt)
		assert.Equal(t, "TX-1", got.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty id", func(t *testing.T) {
		repo, mock, db := newMockRepository(t)
		defer db.Close()

		in := in
		in.ID = ""
		_, err := repo.GetTransactionRepository().Create(context.Background(), in)
		assert.ErrorIs(t, err, common.ErrIDEmpty)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransactionRepository_GetRecent(t *testing.T) {
	repo, mock, db := newMockRepository(t)
	defer db.Close()

	query, _, err := buildListRecentTransactionQuery(50)
	require.NoError(t, err)
	assert.Contains(t, query, "LIMIT 50")

	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "userId", "type", "amount", "balanceBefore", "balanceAfter", "description", "status", "createdAt"}).
			AddRow("TX-2", "user-1", "airtime", "5.00", "100.00", "95.00", "Airtime", "completed", createdAt))

	got, err := repo.GetTransactionRepository().GetRecent(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.TransactionTypeAirtime, got[0].Type)
	assert.NoError(t, got[0].Verify())
	assert.NoError(t, mock.ExpectationsWereMet())
}
