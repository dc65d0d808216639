package services

import (
	"github.com/unionconnect/go-wallet-admin/internal/common/cache"
	"github.com/unionconnect/go-wallet-admin/internal/common/idgenerator"
	"github.com/unionconnect/go-wallet-admin/internal/common/metrics"
	"github.com/unionconnect/go-wallet-admin/internal/common/publisher"
	"github.com/unionconnect/go-wallet-admin/internal/config"
	"github.com/unionconnect/go-wallet-admin/internal/models"
	"github.com/unionconnect/go-wallet-admin/internal/repositories"
)

// SnapshotSource exposes the latest aggregate snapshot.
type SnapshotSource interface {
	Current() *models.Snapshot
}

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo   repositories.SQLRepository
	snapshots SnapshotSource

	loanDecisionPub publisher.Publisher
	principalCache  cache.Client[models.Principal]
	idgenerator     idgenerator.Generator
	metrics         metrics.Metrics

	common service

	Loan      LoanService
	Member    MemberService
	Dashboard DashboardService
	Identity  IdentityService
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	snapshots SnapshotSource,
	idgenerator idgenerator.Generator,
	loanDecisionPub publisher.Publisher,
	principalCache cache.Client[models.Principal],
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:            conf,
		sqlRepo:         sqlRepo,
		snapshots:       snapshots,
		idgenerator:     idgenerator,
		loanDecisionPub: loanDecisionPub,
		principalCache:  principalCache,
		metrics:         metrics,
	}
	srv.common.srv = srv
	srv.Loan = (*loan)(&srv.common)
	srv.Member = (*member)(&srv.common)
	srv.Dashboard = (*dashboard)(&srv.common)
	srv.Identity = (*identity)(&srv.common)

	return srv
}

func (s *Services) snapshot() *models.Snapshot {
	if s.snapshots == nil {
		return models.EmptySnapshot()
	}
	if current := s.snapshots.Current(); current != nil {
		return current
	}
	return models.EmptySnapshot()
}
