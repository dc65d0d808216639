package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionType_Sign(t *testing.T) {
	tests := []struct {
		txType     TransactionType
		creditLike bool
		sign       int64
	}{
		{txType: TransactionTypeDeposit, creditLike: true, sign: 1},
		{txType: TransactionTypeLoanDisbursement, creditLike: true, sign: 1},
		{txType: TransactionTypeTransferReceived, creditLike: true, sign: 1},
		{txType: TransactionTypeWithdraw, creditLike: false, sign: -1},
		{txType: TransactionTypeTransferSent, creditLike: false, sign: -1},
		{txType: TransactionTypeAirtime, creditLike: false, sign: -1},
		{txType: TransactionTypeData, creditLike: false, sign: -1},
		{txType: TransactionType("bonus"), creditLike: false, sign: -1},
	}
	for _, tt := range tests {
		t.Run(tt.txType.String(), func(t *testing.T) {
			assert.Equal(t, tt.creditLike, tt.txType.IsCreditLike())
			assert.Equal(t, tt.sign, tt.txType.Sign())
		})
	}

	assert.False(t, TransactionType("bonus").Valid())
	assert.True(t, TransactionTypeAirtime.Valid())
}

func TestTransaction_Verify(t *testing.T) {
	tests := []struct {
		name    string
		tx      Transaction
		wantErr bool
	}{
		{
			name: "credit entry balances",
			tx: Transaction{
				ID:            "tx-1",
				Type:          TransactionTypeDeposit,
				Amount:        decimal.NewFromInt(200),
				BalanceBefore: decimal.NewFromInt(100),
				BalanceAfter:  decimal.NewFromInt(300),
			},
		},
		{
			name: "debit entry balances",
			tx: Transaction{
				ID:            "tx-2",
				Type:          TransactionTypeAirtime,
				Amount:        decimal.NewFromFloat(12.5),
				BalanceBefore: decimal.NewFromInt(100),
				BalanceAfter:  decimal.NewFromFloat(87.5),
			},
		},
		{
			name: "debit recorded as credit",
			tx: Transaction{
				ID:            "tx-3",
				Type:          TransactionTypeWithdraw,
				Amount:        decimal.NewFromInt(50),
				BalanceBefore: decimal.NewFromInt(100),
				BalanceAfter:  decimal.NewFromInt(150),
			},
			wantErr: true,
		},
		{
			name: "zero amount",
			tx: Transaction{
				ID:            "tx-4",
				Type:          TransactionTypeDeposit,
				Amount:        decimal.Zero,
				BalanceBefore: decimal.NewFromInt(100),
				BalanceAfter:  decimal.NewFromInt(100),
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Verify()
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestNewLoanDisbursement(t *testing.T) {
	loan := LoanRequest{
		ID:      "loan-1",
		UserID:  "user-1",
		Amount:  decimal.NewFromInt(500),
		Purpose: "School fees",
		Status:  LoanStatusPending,
	}

	got := NewLoanDisbursement("tx-9", loan, decimal.NewFromInt(1000))

	want := Transaction{
		ID:            "tx-9",
		UserID:        "user-1",
		Type:          TransactionTypeLoanDisbursement,
		Amount:        decimal.NewFromInt(500),
		BalanceBefore: decimal.NewFromInt(1000),
		BalanceAfter:  decimal.NewFromInt(1500),
		Description:   "Loan Disbursement: School fees",
		Status:        TransactionStatusCompleted,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewLoanDisbursement() mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, got.Verify())
}

func TestTransaction_ToModelResponse(t *testing.T) {
	res := Transaction{
		ID:            "tx-1",
		UserID:        "user-1",
		Type:          TransactionTypeTransferSent,
		Amount:        decimal.NewFromInt(40),
		BalanceBefore: decimal.NewFromInt(100),
		BalanceAfter:  decimal.NewFromInt(60),
		Status:        TransactionStatusCompleted,
	}.ToModelResponse()

	assert.Equal(t, ToneDanger, res.Tone)
	assert.Equal(t, "-40.00", res.SignedAmount.StringFixed(MoneyScale))

	raw, err := json.Marshal(res.Amount)
	require.NoError(t, err)
	assert.Equal(t, "40.00", string(raw))
}

func TestCreateMemberRequest_Normalize(t *testing.T) {
	opening := decimal.NewFromFloat(10.555)
	got := CreateMemberRequest{
		MemberID:    "  uc-0042 ",
		FullName:    " Ama Mensah ",
		PhoneNumber: " 0240000000",
		Balance:     &opening,
	}.Normalize()

	assert.Equal(t, "UC-0042", got.MemberID)
	assert.Equal(t, "Ama Mensah", got.FullName)
	assert.Equal(t, "0240000000", got.PhoneNumber)
	assert.True(t, got.Balance.Equal(decimal.NewFromFloat(10.56)))

	empty := CreateMemberRequest{MemberID: "uc-1"}.Normalize()
	assert.True(t, empty.Balance.IsZero())
}

func TestMember_ToModelResponse(t *testing.T) {
	assert.Equal(t, MemberAccessOpen, Member{}.ToModelResponse().AccessStatus)
	assert.Equal(t, MemberAccessActive, Member{HasAppAccount: true}.ToModelResponse().AccessStatus)
}
