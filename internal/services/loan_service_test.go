package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	"github.com/unionconnect/go-wallet-admin/internal/common/publisher"
	"github.com/unionconnect/go-wallet-admin/internal/config"
	"github.com/unionconnect/go-wallet-admin/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func pendingLoan() models.LoanRequest {
	return models.LoanRequest{
		ID:        "LOAN-1",
		UserID:    "uid-1",
		Amount:    decimal.RequireFromString("50.00"),
		Duration:  6,
		Purpose:   "school fees",
		Status:    models.LoanStatusPending,
		CreatedAt: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestLoanService_ApproveLoan(t *testing.T) {
	testHelper := serviceTestHelper(t)

	type args struct {
		loanID     string
		approverID string
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(args args)
		want    string
		wantErr error
	}{
		{
			name: "success",
			args: args{loanID: "LOAN-1", approverID: "admin-1"},
			doMock: func(args args) {
				loan := pendingLoan()
				gomock.InOrder(
					testHelper.mockLoanRepository.EXPECT().GetByID(gomock.Any(), args.loanID).Return(loan, nil),
					testHelper.mockUserRepository.EXPECT().GetBalance(gomock.Any(), loan.UserID).Return(models.AccountBalance{
						AccountID: loan.UserID,
						Balance:   decimal.RequireFromString("100.00"),
						Version:   3,
					}, nil),
					testHelper.mockLoanRepository.EXPECT().MarkApproved(gomock.Any(), loan.ID, args.approverID).Return(nil),
					testHelper.mockUserRepository.EXPECT().IncrementBalance(gomock.Any(), loan.UserID, loan.Amount, int64(3)).Return(nil),
					testHelper.mockIDGenerator.EXPECT().Generate("TX").Return("TX-1"),
					testHelper.mockTrxRepository.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, in models.Transaction) (models.Transaction, error) {
							want := models.Transaction{
								ID:            "TX-1",
								UserID:        "uid-1",
								Type:          models.TransactionTypeLoanDisbursement,
								Amount:        decimal.RequireFromString("50"),
								BalanceBefore: decimal.RequireFromString("100"),
								BalanceAfter:  decimal.RequireFromString("150"),
								Description:   "Loan Disbursement: school fees",
								Status:        models.TransactionStatusCompleted,
							}
							if diff := cmp.Diff(want, in, decimalComparer); diff != "" {
								t.Errorf("ledger entry mismatch (-want +got):\n%s", diff)
							}
							in.CreatedAt = time.Now()
							return in, nil
						}),
				)
				testHelper.mockLoanDecisionPub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, message any, _ ...publisher.PublishOption) error {
						event, ok := message.(models.LoanDecisionEvent)
						require.True(t, ok)
						assert.Equal(t, "LOAN-1", event.LoanID)
						assert.Equal(t, "approved", event.Status)
						assert.Equal(t, "admin-1", event.DecidedBy)
						assert.Equal(t, "50.00", event.Amount)
						assert.Equal(t, "TX-1", event.TransactionID)
						return nil
					})
			},
			want: "TX-1",
		},
		{
			name: "publish failure does not fail the approval",
			args: args{loanID: "LOAN-1", approverID: "admin-1"},
			doMock: func(args args) {
				loan := pendingLoan()
				testHelper.mockLoanRepository.EXPECT().GetByID(gomock.Any(), args.loanID).Return(loan, nil)
				testHelper.mockUserRepository.EXPECT().GetBalance(gomock.Any(), loan.UserID).Return(models.AccountBalance{Balance: decimal.Zero, Version: 1}, nil)
				testHelper.mockLoanRepository.EXPECT().MarkApproved(gomock.Any(), loan.ID, args.approverID).Return(nil)
				testHelper.mockUserRepository.EXPECT().IncrementBalance(gomock.Any(), loan.UserID, loan.Amount, int64(1)).Return(nil)
				testHelper.mockIDGenerator.EXPECT().Generate("TX").Return("TX-2")
				testHelper.mockTrxRepository.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, in models.Transaction) (models.Transaction, error) { return in, nil })
				testHelper.mockLoanDecisionPub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			want: "TX-2",
		},
		{
			name:    "empty loan id",
			args:    args{loanID: " ", approverID: "admin-1"},
			wantErr: common.ErrValidation,
		},
		{
			name:    "missing approver",
			args:    args{loanID: "LOAN-1"},
			wantErr: common.ErrPrincipalRequired,
		},
		{
			name: "loan not found",
			args: args{loanID: "LOAN-404", approverID: "admin-1"},
			doMock: func(args args) {
				testHelper.mockLoanRepository.EXPECT().GetByID(gomock.Any(), args.loanID).Return(models.LoanRequest{}, common.ErrLoanNotFound)
			},
			wantErr: common.ErrDataNotFound,
		},
		{
			name: "loan already approved",
			args: args{loanID: "LOAN-1", approverID: "admin-1"},
			doMock: func(args args) {
				loan := pendingLoan()
				loan.Status = models.LoanStatusApproved
				testHelper.mockLoanRepository.EXPECT().GetByID(gomock.Any(), args.loanID).Return(loan, nil)
			},
			wantErr: common.ErrLoanNotPending,
		},
		{
			name: "loan with zero amount",
			args: args{loanID: "LOAN-1", approverID: "admin-1"},
			doMock: func(args args) {
				loan := pendingLoan()
				loan.Amount = decimal.Zero
				testHelper.mockLoanRepository.EXPECT().GetByID(gomock.Any(), args.loanID).Return(loan, nil)
			},
			wantErr: common.ErrPrecondition,
		},
		{
			name: "account missing",
			args: args{loanID: "LOAN-1", approverID: "admin-1"},
			doMock: func(args args) {
				loan := pendingLoan()
				testHelper.mockLoanRepository.EXPECT().GetByID(gomock.Any(), args.loanID).Return(loan, nil)
				testHelper.mockUserRepository.EXPECT().GetBalance(gomock.Any(), loan.UserID).Return(models.AccountBalance{}, common.ErrAccountNotFound)
			},
			wantErr: common.ErrAccountNotFound,
		},
		{
			name: "status changed concurrently",
			args: args{loanID: "LOAN-1", approverID: "admin-1"},
			doMock: func(args args) {
				loan := pendingLoan()
				testHelper.mockLoanRepository.EXPECT().GetByID(gomock.Any(), args.loanID).Return(loan, nil)
				testHelper.mockUserRepository.EXPECT().GetBalance(gomock.Any(), loan.UserID).Return(models.AccountBalance{Balance: decimal.Zero, Version: 1}, nil)
				testHelper.mockLoanRepository.EXPECT().MarkApproved(gomock.Any(), loan.ID, args.approverID).Return(common.ErrLoanStatusChanged)
			},
			wantErr: common.ErrConflict,
		},
		{
			name: "balance moved concurrently",
			args: args{loanID: "LOAN-1", approverID: "admin-1"},
			doMock: func(args args) {
				loan := pendingLoan()
				testHelper.mockLoanRepository.EXPECT().GetByID(gomock.Any(), args.loanID).Return(loan, nil)
				testHelper.mockUserRepository.EXPECT().GetBalance(gomock.Any(), loan.UserID).Return(models.AccountBalance{Balance: decimal.Zero, Version: 1}, nil)
				testHelper.mockLoanRepository.EXPECT().MarkApproved(gomock.Any(), loan.ID, args.approverID).Return(nil)
				testHelper.mockUserRepository.EXPECT().IncrementBalance(gomock.Any(), loan.UserID, loan.Amount, int64(1)).Return(common.ErrBalanceVersionMove)
			},
			wantErr: common.ErrConflict,
		},
		{
			name: "ledger insert fails",
			args: args{loanID: "LOAN-1", approverID: "admin-1"},
			doMock: func(args args) {
				loan := pendingLoan()
				testHelper.mockLoanRepository.EXPECT().GetByID(gomock.Any(), args.loanID).Return(loan, nil)
				testHelper.mockUserRepository.EXPECT().GetBalance(gomock.Any(), loan.UserID).Return(models.AccountBalance{Balance: decimal.Zero, Version: 1}, nil)
				testHelper.mockLoanRepository.EXPECT().MarkApproved(gomock.Any(), loan.ID, args.approverID).Return(nil)
				testHelper.mockUserRepository.EXPECT().IncrementBalance(gomock.Any(), loan.UserID, loan.Amount, int64(1)).Return(nil)
				testHelper.mockIDGenerator.EXPECT().Generate("TX").Return("TX-3")
				testHelper.mockTrxRepository.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Transaction{}, common.ErrUnavailable)
			},
			wantErr: common.ErrUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			got, err := testHelper.loanService.ApproveLoan(context.Background(), tt.args.loanID, tt.args.approverID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoanService_ApproveLoan_publishDisabled(t *testing.T) {
	testHelper := serviceTestHelper(t, func(c *config.Config) {
		c.FeatureFlag.EnablePublishLoanDecision = false
	})

	loan := pendingLoan()
	testHelper.mockLoanRepository.EXPECT().GetByID(gomock.Any(), loan.ID).Return(loan, nil)
	testHelper.mockUserRepository.EXPECT().GetBalance(gomock.Any(), loan.UserID).Return(models.AccountBalance{Balance: decimal.Zero, Version: 1}, nil)
	testHelper.mockLoanRepository.EXPECT().MarkApproved(gomock.Any(), loan.ID, "admin-1").Return(nil)
	testHelper.mockUserRepository.EXPECT().IncrementBalance(gomock.Any(), loan.UserID, loan.Amount, int64(1)).Return(nil)
	testHelper.mockIDGenerator.EXPECT().Generate("TX").Return("TX-9")
	testHelper.mockTrxRepository.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in models.Transaction) (models.Transaction, error) { return in, nil })
	testHelper.mockLoanDecisionPub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := testHelper.loanService.ApproveLoan(context.Background(), loan.ID, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "TX-9", got)

	gatherer, ok := testHelper.metrics.PrometheusRegisterer().(prometheus.Gatherer)
	require.True(t, ok)
	count, err := testutil.GatherAndCount(gatherer, "wallet_admin_loan_decisions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// A store stub shared by two sequential approvals of the same loan: the
// second call must observe the committed status and leave the balance alone.
func TestLoanService_ApproveLoan_twiceInSequence(t *testing.T) {
	testHelper := serviceTestHelper(t, func(c *config.Config) {
		c.FeatureFlag.EnablePublishLoanDecision = false
	})

	var (
		loan    = pendingLoan()
		balance = models.AccountBalance{AccountID: loan.UserID, Balance: decimal.RequireFromString("100.00"), Version: 1}
		ledger  []models.Transaction
	)

	testHelper.mockLoanRepository.EXPECT().GetByID(gomock.Any(), loan.ID).DoAndReturn(
		func(context.Context, string) (models.LoanRequest, error) { return loan, nil }).Times(2)
	testHelper.mockUserRepository.EXPECT().GetBalance(gomock.Any(), loan.UserID).DoAndReturn(
		func(context.Context, string) (models.AccountBalance, error) { return balance, nil }).Times(1)
	testHelper.mockLoanRepository.EXPECT().MarkApproved(gomock.Any(), loan.ID, "admin-1").DoAndReturn(
		func(context.Context, string, string) error {
			loan.Status = models.LoanStatusApproved
			return nil
		}).Times(1)
	testHelper.mockUserRepository.EXPECT().IncrementBalance(gomock.Any(), loan.UserID, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, amount decimal.Decimal, version int64) error {
			require.Equal(t, balance.Version, version)
			balance.Balance = balance.Balance.Add(amount)
			balance.Version++
			return nil
		}).Times(1)
	testHelper.mockIDGenerator.EXPECT().Generate("TX").Return("TX-1").Times(1)
	testHelper.mockTrxRepository.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in models.Transaction) (models.Transaction, error) {
			ledger = append(ledger, in)
			return in, nil
		}).Times(1)

	_, err := testHelper.loanService.ApproveLoan(context.Background(), loan.ID, "admin-1")
	require.NoError(t, err)

	_, err = testHelper.loanService.ApproveLoan(context.Background(), loan.ID, "admin-1")
	assert.ErrorIs(t, err, common.ErrPrecondition)
	assert.False(t, common.IsRetryable(err))

	assert.Equal(t, "150.00", balance.Balance.StringFixed(2))
	require.Len(t, ledger, 1)
	assert.Equal(t, "100.00", ledger[0].BalanceBefore.StringFixed(2))
	assert.Equal(t, "150.00", ledger[0].BalanceAfter.StringFixed(2))
	assert.NoError(t, ledger[0].Verify())
}

func TestLoanService_RejectLoan(t *testing.T) {
	testHelper := serviceTestHelper(t)

	type args struct {
		loanID     string
		rejecterID string
		reason     string
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(args args)
		wantErr error
	}{
		{
			name: "success",
			args: args{loanID: "LOAN-1", rejecterID: "admin-1", reason: "  insufficient history "},
			doMock: func(args args) {
				testHelper.mockLoanRepository.EXPECT().MarkRejected(gomock.Any(), args.loanID, args.rejecterID, "insufficient history").Return(nil)
				testHelper.mockLoanDecisionPub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, message any, _ ...publisher.PublishOption) error {
						event := message.(models.LoanDecisionEvent)
						assert.Equal(t, "rejected", event.Status)
						assert.Equal(t, "insufficient history", event.Reason)
						assert.Empty(t, event.TransactionID)
						return nil
					})
			},
		},
		{
			name:    "blank reason",
			args:    args{loanID: "LOAN-1", rejecterID: "admin-1", reason: " \t\n"},
			wantErr: common.ErrValidation,
		},
		{
			name:    "empty reason",
			args:    args{loanID: "LOAN-1", rejecterID: "admin-1"},
			wantErr: common.ErrMissingReason,
		},
		{
			name:    "missing rejecter",
			args:    args{loanID: "LOAN-1", reason: "duplicate"},
			wantErr: common.ErrPrincipalRequired,
		},
		{
			name: "loan already decided",
			args: args{loanID: "LOAN-1", rejecterID: "admin-1", reason: "duplicate"},
			doMock: func(args args) {
				loan := pendingLoan()
				loan.Status = models.LoanStatusApproved
				testHelper.mockLoanRepository.EXPECT().MarkRejected(gomock.Any(), args.loanID, args.rejecterID, args.reason).Return(common.ErrNoRowsAffected)
				testHelper.mockLoanRepository.EXPECT().GetByID(gomock.Any(), args.loanID).Return(loan, nil)
			},
			wantErr: common.ErrLoanNotPending,
		},
		{
			name: "loan not found",
			args: args{loanID: "LOAN-404", rejecterID: "admin-1", reason: "duplicate"},
			doMock: func(args args) {
				testHelper.mockLoanRepository.EXPECT().MarkRejected(gomock.Any(), args.loanID, args.rejecterID, args.reason).Return(common.ErrNoRowsAffected)
				testHelper.mockLoanRepository.EXPECT().GetByID(gomock.Any(), args.loanID).Return(models.LoanRequest{}, common.ErrLoanNotFound)
			},
			wantErr: common.ErrLoanNotFound,
		},
		{
			name: "permission denied",
			args: args{loanID: "LOAN-1", rejecterID: "admin-1", reason: "duplicate"},
			doMock: func(args args) {
				testHelper.mockLoanRepository.EXPECT().MarkRejected(gomock.Any(), args.loanID, args.rejecterID, args.reason).Return(common.ErrPermissionDenied)
			},
			wantErr: common.ErrPermissionDenied,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			err := testHelper.loanService.RejectLoan(context.Background(), tt.args.loanID, tt.args.rejecterID, tt.args.reason)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoanService_GetList(t *testing.T) {
	testHelper := serviceTestHelper(t)

	filter := models.LoanFilter{Status: models.LoanStatusPending}
	testHelper.mockLoanRepository.EXPECT().GetList(gomock.Any(), filter).Return([]models.LoanRequest{pendingLoan()}, nil)

	got, err := testHelper.loanService.GetList(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = testHelper.loanService.GetList(context.Background(), models.LoanFilter{Status: "archived"})
	assert.ErrorIs(t, err, common.ErrValidation)
}
