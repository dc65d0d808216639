package models

// TransactionStatus is the settlement state of a ledger entry. Entries
// written by the loan engine are always completed.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
)

func (m TransactionStatus) String() string {
	return string(m)
}

