package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

func (t TransactionType) String() string {
	return string(t)
}

const (
	TransactionTypeDeposit          TransactionType = "deposit"
	TransactionTypeWithdraw         TransactionType = "withdraw"
	TransactionTypeTransferSent     TransactionType = "transfer_sent"
	TransactionTypeTransferReceived TransactionType = "transfer_received"
	TransactionTypeLoanDisbursement TransactionType = "loan_disbursement"
	TransactionTypeAirtime          TransactionType = "airtime"
	TransactionTypeData             TransactionType = "data"
)

var (
	// TransactionTypes lists every ledger entry type in display order.
	TransactionTypes = []TransactionType{
		TransactionTypeDeposit,
		TransactionTypeWithdraw,
		TransactionTypeTransferSent,
		TransactionTypeTransferReceived,
		TransactionTypeLoanDisbursement,
		TransactionTypeAirtime,
		TransactionTypeData,
	}

	creditLikeTypes = map[TransactionType]struct{}{
		TransactionTypeDeposit:          {},
		TransactionTypeLoanDisbursement: {},
		TransactionTypeTransferReceived: {},
	}
)

func (t TransactionType) Valid() bool {
	for _, v := range TransactionTypes {
		if v == t {
			return true
		}
	}
	return false
}

// IsCreditLike reports whether the entry increases the owner's balance.
func (t TransactionType) IsCreditLike() bool {
	_, ok := creditLikeTypes[t]
	return ok
}

// Sign is +1 for credit-like types and -1 otherwise.
func (t TransactionType) Sign() int64 {
	if t.IsCreditLike() {
		return 1
	}
	return -1
}

// Transaction is an immutable ledger entry.
type Transaction struct {
	ID            string
	UserID        string
	Type          TransactionType
	Amount        decimal.Decimal
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
	Description   string
	Status        TransactionStatus
	CreatedAt     time.Time
}

func (t Transaction) SignedAmount() decimal.Decimal {
	return t.Amount.Mul(decimal.NewFromInt(t.Type.Sign()))
}

// Verify checks balanceAfter = balanceBefore + signedAmount.
func (t Transaction) Verify() error {
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction %s: amount must be greater than zero", t.ID)
	}

	want := t.BalanceBefore.Add(t.SignedAmount())
	if !t.BalanceAfter.Equal(want) {
		return fmt.Errorf("transaction %s: balanceAfter %s does not match balanceBefore %s %+d x %s",
			t.ID, t.BalanceAfter, t.BalanceBefore, t.Type.Sign(), t.Amount)
	}

	return nil
}

// NewLoanDisbursement builds the ledger entry crediting an approved loan.
// CreatedAt is assigned by the store.
func NewLoanDisbursement(id string, loan LoanRequest, balanceBefore decimal.Decimal) Transaction {
	return Transaction{
		ID:            id,
		UserID:        loan.UserID,
		Type:          TransactionTypeLoanDisbursement,
		Amount:        loan.Amount,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceBefore.Add(loan.Amount),
		Description:   fmt.Sprintf("Loan Disbursement: %s", loan.Purpose),
		Status:        TransactionStatusCompleted,
	}
}

const (
	ToneSuccess = "success"
	ToneDanger  = "danger"
)

type TransactionResponse struct {
	Kind          string    `json:"kind" example:"transaction"`
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	MemberID      string    `json:"memberId,omitempty"`
	Type          string    `json:"type"`
	Amount        Decimal   `json:"amount"`
	SignedAmount  Decimal   `json:"signedAmount"`
	Tone          string    `json:"tone"`
	BalanceBefore Decimal   `json:"balanceBefore"`
	BalanceAfter  Decimal   `json:"balanceAfter"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (t Transaction) ToModelResponse() TransactionResponse {
	tone := ToneDanger
	if t.Type.IsCreditLike() {
		tone = ToneSuccess
	}

	return TransactionResponse{
		Kind:          "transaction",
		ID:            t.ID,
		UserID:        t.UserID,
		Type:          t.Type.String(),
		Amount:        NewMoney(t.Amount),
		SignedAmount:  NewMoney(t.SignedAmount()),
		Tone:          tone,
		BalanceBefore: NewMoney(t.BalanceBefore),
		BalanceAfter:  NewMoney(t.BalanceAfter),
		Description:   t.Description,
		Status:        t.Status.String(),
		CreatedAt:     t.CreatedAt,
	}
}

// TransactionFilter is the transaction list query. Empty fields do not filter.
type TransactionFilter struct {
	Type     string `query:"type" json:"type"`
	Date     string `query:"date" json:"date"`
	MemberID string `query:"memberId" json:"memberId"`
}

const TransactionFilterAll = "all"
