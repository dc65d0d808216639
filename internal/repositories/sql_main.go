package repositories

//go:generate mockgen -source=sql_main.go -destination=mock/sql_main.go -package=mock

import (
	"context"
	"database/sql"

	"github.com/unionconnect/go-wallet-admin/internal/config"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	ur *userRepository
	mr *memberRepository
	lr *loanRequestRepository
	tr *transactionRepository
}

func NewSQLRepository(
	dbWrite *sql.DB,
	dbRead *sql.DB,
	cfg config.Config,
) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.ur = (*userRepository)(&rtx.common)
	rtx.mr = (*memberRepository)(&rtx.common)
	rtx.lr = (*loanRequestRepository)(&rtx.common)
	rtx.tr = (*transactionRepository)(&rtx.common)

	return rtx
}

type SQLRepository interface {
	// Atomic runs steps inside one database transaction. Every repository
	// call made with the ctx passed to steps joins that transaction; any error
	// returned by steps rolls every write back.
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetUserRepository() UserRepository
	GetMemberRepository() MemberRepository
	GetLoanRequestRepository() LoanRequestRepository
	GetTransactionRepository() TransactionRepository

	// Migrate installs the tables and the change notification triggers.
	Migrate(ctx context.Context) error
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) GetUserRepository() UserRepository {
	return r.ur
}

func (r *Repository) GetMemberRepository() MemberRepository {
	return r.mr
}

func (r *Repository) GetLoanRequestRepository() LoanRequestRepository {
	return r.lr
}

func (r *Repository) GetTransactionRepository() TransactionRepository {
	return r.tr
}
