package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Collection names a live feed; the values match the backing tables.
type Collection string

func (c Collection) String() string {
	return string(c)
}

const (
	CollectionUsers        Collection = "users"
	CollectionMembers      Collection = "members"
	CollectionTransactions Collection = "transactions"
	CollectionLoanRequests Collection = "loan_requests"
)

// Collections lists every collection a session subscribes to.
var Collections = []Collection{
	CollectionUsers,
	CollectionMembers,
	CollectionTransactions,
	CollectionLoanRequests,
}

type Stats struct {
	TotalUsers        int
	PendingLoans      int
	TotalTransactions int
	TotalVolume       decimal.Decimal
}

// Snapshot is an immutable view of every collection. A new Snapshot is built
// for each change; slices are shared between snapshots and must not be mutated.
type Snapshot struct {
	Accounts     []Account
	Members      []Member
	Transactions []Transaction
	Loans        []LoanRequest
	Stats        Stats
	Revision     uint64
	UpdatedAt    map[Collection]time.Time
}

// EmptySnapshot is the state before any feed has delivered.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Accounts:     []Account{},
		Members:      []Member{},
		Transactions: []Transaction{},
		Loans:        []LoanRequest{},
		Stats:        Stats{TotalVolume: decimal.Zero},
		UpdatedAt:    map[Collection]time.Time{},
	}
}

// AccountByID returns the account owning id.
func (s *Snapshot) AccountByID(id string) (Account, bool) {
	for _, a := range s.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

type StatsResponse struct {
	Kind              string    `json:"kind" example:"dashboardStats"`
	TotalUsers        int       `json:"totalUsers"`
	PendingLoans      int       `json:"pendingLoans"`
	TotalTransactions int       `json:"totalTransactions"`
	TotalVolume       Decimal   `json:"totalVolume"`
	Revision          uint64    `json:"revision"`
	GeneratedAt       time.Time `json:"generatedAt"`
}

func (s Stats) ToModelResponse() StatsResponse {
	return StatsResponse{
		Kind:              "dashboardStats",
		TotalUsers:        s.TotalUsers,
		PendingLoans:      s.PendingLoans,
		TotalTransactions: s.TotalTransactions,
		TotalVolume:       NewMoney(s.TotalVolume),
	}
}

// DailyVolumePoint is the summed amount of one calendar day.
type DailyVolumePoint struct {
	Date   string  `json:"date"`
	Label  string  `json:"label"`
	Volume Decimal `json:"volume"`
	Count  int     `json:"count"`
}

type TypeShare struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type RoleSplit struct {
	Admins  int `json:"admins"`
	Members int `json:"members"`
}

type ChartsResponse struct {
	Kind             string             `json:"kind" example:"dashboardCharts"`
	DailyVolume      []DailyVolumePoint `json:"dailyVolume"`
	TypeDistribution []TypeShare        `json:"typeDistribution"`
	Roles            RoleSplit          `json:"roles"`
}
