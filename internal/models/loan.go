package models

import (
	"fmt"
	"time"

	"github.com/unionconnect/go-wallet-admin/internal/common"

	"github.com/shopspring/decimal"
)

type LoanStatus string

func (s LoanStatus) String() string {
	return string(s)
}

const (
	LoanStatusPending  LoanStatus = "pending"
	LoanStatusApproved LoanStatus = "approved"
	LoanStatusRejected LoanStatus = "rejected"
)

// LoanRequest is terminal once Status leaves pending; only audit fields are
// written afterwards.
type LoanRequest struct {
	ID              string
	UserID          string
	Amount          decimal.Decimal
	Duration        int
	Purpose         string
	Status          LoanStatus
	CreatedAt       time.Time
	ApprovedAt      *time.Time
	ApprovedBy      string
	RejectedAt      *time.Time
	RejectedBy      string
	RejectionReason string
}

func (l LoanRequest) IsPending() bool {
	return l.Status == LoanStatusPending
}

type LoanResponse struct {
	Kind            string     `json:"kind" example:"loanRequest"`
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	Amount          Decimal    `json:"amount"`
	Duration        int        `json:"duration"`
	Purpose         string     `json:"purpose"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy      string     `json:"approvedBy,omitempty"`
	RejectedAt      *time.Time `json:"rejectedAt,omitempty"`
	RejectedBy      string     `json:"rejectedBy,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
}

func (l LoanRequest) ToModelResponse() LoanResponse {
	return LoanResponse{
		Kind:            "loanRequest",
		ID:              l.ID,
		UserID:          l.UserID,
		Amount:          NewMoney(l.Amount),
		Duration:        l.Duration,
		Purpose:         l.Purpose,
		Status:          l.Status.String(),
		CreatedAt:       l.CreatedAt,
		ApprovedAt:      l.ApprovedAt,
		ApprovedBy:      l.ApprovedBy,
		RejectedAt:      l.RejectedAt,
		RejectedBy:      l.RejectedBy,
		RejectionReason: l.RejectionReason,
	}
}

type RejectLoanRequest struct {
	Reason string `json:"reason"`
}

type ApproveLoanResponse struct {
	Kind          string `json:"kind" example:"loanApproval"`
	LoanID        string `json:"loanId"`
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
}

type RejectLoanResponse struct {
	Kind   string `json:"kind" example:"loanRejection"`
	LoanID string `json:"loanId"`
	Status string `json:"status"`
}

// LoanDecisionEvent is published after an approval or rejection commits.
type LoanDecisionEvent struct {
	LoanID        string    `json:"loanId"`
	UserID        string    `json:"userId,omitempty"`
	Status        string    `json:"status"`
	DecidedBy     string    `json:"decidedBy"`
	Amount        string    `json:"amount,omitempty"`
	TransactionID string    `json:"transactionId,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	DecidedAt     time.Time `json:"decidedAt"`
}

// LoanFilter narrows the loan list. Empty fields do not filter.
type LoanFilter struct {
	Status LoanStatus `query:"status"`
	UserID string     `query:"userId"`
}

func (f LoanFilter) Validate() error {
	switch f.Status {
	case "", LoanStatusPending, LoanStatusApproved, LoanStatusRejected:
		return nil
	}
	return fmt.Errorf("%w: %w", common.ErrValidation, GetErrMap(ErrKeyInvalidLoanStatus, f.Status.String()))
}
