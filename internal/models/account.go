package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a wallet holder, stored in the "users" collection.
type Account struct {
	ID          string
	MemberID    string
	FullName    string
	PhoneNumber string
	Email       string
	IsAdmin     bool
	Balance     decimal.Decimal
	Version     int64
	CreatedAt   time.Time
}

type AccountResponse struct {
	Kind        string    `json:"kind" example:"account"`
	ID          string    `json:"id"`
	MemberID    string    `json:"memberId"`
	FullName    string    `json:"fullName"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
	IsAdmin     bool      `json:"isAdmin"`
	Balance     Decimal   `json:"balance"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (a Account) ToModelResponse() AccountResponse {
	return AccountResponse{
		Kind:        "account",
		ID:          a.ID,
		MemberID:    a.MemberID,
		FullName:    a.FullName,
		PhoneNumber: a.PhoneNumber,
		Email:       a.Email,
		IsAdmin:     a.IsAdmin,
		Balance:     NewMoney(a.Balance),
		CreatedAt:   a.CreatedAt,
	}
}

// AccountBalance is the balance read at the start of an atomic unit together
// with the version the conditional write must still observe.
type AccountBalance struct {
	AccountID string
	Balance   decimal.Decimal
	Version   int64
}

// Principal is the verified staff identity behind a request.
type Principal struct {
	UID      string `json:"uid"`
	MemberID string `json:"memberId"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

func (a Account) ToPrincipal() Principal {
	return Principal{
		UID:      a.ID,
		MemberID: a.MemberID,
		Email:    a.Email,
		IsAdmin:  a.IsAdmin,
	}
}
