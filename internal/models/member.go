package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Member is an enrollment record: a pre-authorized identity created by staff
// before the holder signs up. HasAppAccount is flipped by the mobile sign-up flow.
type Member struct {
	MemberID      string
	FullName      string
	PhoneNumber   string
	Balance       decimal.Decimal
	HasAppAccount bool
	CreatedAt     time.Time
}

type MemberResponse struct {
	Kind          string    `json:"kind" example:"member"`
	MemberID      string    `json:"memberId"`
	FullName      string    `json:"fullName"`
	PhoneNumber   string    `json:"phoneNumber"`
	Balance       Decimal   `json:"balance"`
	HasAppAccount bool      `json:"hasAppAccount"`
	AccessStatus  string    `json:"accessStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

const (
	MemberAccessActive = "ACTIVE ACCOUNT"
	MemberAccessOpen   = "ENROLLMENT OPEN"
)

func (m Member) ToModelResponse() MemberResponse {
	status := MemberAccessOpen
	if m.HasAppAccount {
		status = MemberAccessActive
	}

	return MemberResponse{
		Kind:          "member",
		MemberID:      m.MemberID,
		FullName:      m.FullName,
		PhoneNumber:   m.PhoneNumber,
		Balance:       NewMoney(m.Balance),
		HasAppAccount: m.HasAppAccount,
		AccessStatus:  status,
		CreatedAt:     m.CreatedAt,
	}
}

type CreateMemberRequest struct {
	MemberID    string           `json:"memberId" validate:"required,max=32,memberid"`
	FullName    string           `json:"fullName" validate:"required,nonblank"`
	PhoneNumber string           `json:"phoneNumber" validate:"required,phone"`
	Balance     *decimal.Decimal `json:"balance"`
}

// CreateMemberIn is the normalized enrollment ready to be stored.
type CreateMemberIn struct {
	MemberID    string
	FullName    string
	PhoneNumber string
	Balance     decimal.Decimal
}

func (r CreateMemberRequest) Normalize() CreateMemberIn {
	balance := decimal.Zero
	if r.Balance != nil {
		balance = r.Balance.Round(MoneyScale)
	}

	return CreateMemberIn{
		MemberID:    strings.ToUpper(strings.TrimSpace(r.MemberID)),
		FullName:    strings.TrimSpace(r.FullName),
		PhoneNumber: strings.TrimSpace(r.PhoneNumber),
		Balance:     balance,
	}
}
