package services

import (
	"context"
	"strings"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	"github.com/unionconnect/go-wallet-admin/internal/models"
	"github.com/unionconnect/go-wallet-admin/internal/projection"
)

const (
	DefaultChartDays = 7
	MaxChartDays     = 90
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service.go -package=mock
type DashboardService interface {
	GetStats(ctx context.Context) models.StatsResponse
	GetCharts(ctx context.Context, days int) models.ChartsResponse
	SearchAccounts(ctx context.Context, query string) []models.AccountResponse
	GetMembers(ctx context.Context) []models.MemberResponse
	GetTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionResponse, error)
}

// dashboard reads the aggregate snapshot; it never touches the store.
type dashboard service

var _ DashboardService = (*dashboard)(nil)

func (s *dashboard) GetStats(_ context.Context) models.StatsResponse {
	snapshot := s.srv.snapshot()

	resp := snapshot.Stats.ToModelResponse()
	resp.Revision = snapshot.Revision
	resp.GeneratedAt = common.Now()

	return resp
}

func (s *dashboard) GetCharts(_ context.Context, days int) models.ChartsResponse {
	if days <= 0 {
		days = DefaultChartDays
	}
	if days > MaxChartDays {
		days = MaxChartDays
	}

	return projection.Charts(s.srv.snapshot(), days, common.Now(), s.srv.conf.Location())
}

func (s *dashboard) SearchAccounts(_ context.Context, query string) []models.AccountResponse {
	accounts := projection.SearchAccounts(s.srv.snapshot().Accounts, query)

	result := make([]models.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		result = append(result, a.ToModelResponse())
	}
	return result
}

func (s *dashboard) GetMembers(_ context.Context) []models.MemberResponse {
	members := projection.SortMembersByCreatedDesc(s.srv.snapshot().Members)

	result := make([]models.MemberResponse, 0, len(members))
	for _, m := range members {
		result = append(result, m.ToModelResponse())
	}
	return result
}

func (s *dashboard) GetTransactions(_ context.Context, filter models.TransactionFilter) ([]models.TransactionResponse, error) {
	txType := strings.TrimSpace(filter.Type)
	if txType != "" && txType != models.TransactionFilterAll && !models.TransactionType(txType).Valid() {
		return nil, common.ErrInvalidTransactionType
	}

	snapshot := s.srv.snapshot()
	transactions, err := projection.FilterTransactions(snapshot, filter, s.srv.conf.Location())
	if err != nil {
		return nil, err
	}

	return projection.PresentTransactions(snapshot, transactions), nil
}
