package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	"github.com/unionconnect/go-wallet-admin/internal/models"
	"github.com/unionconnect/go-wallet-admin/internal/monitoring"
)

//go:generate mockgen -source=sql_member.go -destination=mock/sql_member.go -package=mock

type MemberRepository interface {
	// Create stores a new enrollment record with hasAppAccount=false.
	// An existing memberId fails with common.ErrMemberAlreadyExist.
	Create(ctx context.Context, in models.CreateMemberIn) (models.Member, error)
	GetAll(ctx context.Context) ([]models.Member, error)
}

type memberRepository sqlRepo

var _ MemberRepository = (*memberRepository)(nil)

func (mr *memberRepository) Create(ctx context.Context, in models.CreateMemberIn) (result models.Member, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore(models.CollectionMembers.String(), "INSERT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxWrite(ctx)

	result = models.Member{
		MemberID:    in.MemberID,
		FullName:    in.FullName,
		PhoneNumber: in.PhoneNumber,
		Balance:     in.Balance,
	}

	err = db.QueryRowContext(ctx, queryMemberCreate,
		in.MemberID,
		in.FullName,
		in.PhoneNumber,
		in.Balance,
	).Scan(&result.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = common.ErrMemberAlreadyExist
			return
		}

		err = classifyError(err)
		if errors.Is(err, common.ErrDataExist) {
			err = common.ErrMemberAlreadyExist
		}
		return
	}

	return
}

func (mr *memberRepository) GetAll(ctx context.Context) (result []models.Member, err error) {
	monitor := monitoring.New(ctx, monitoring.WithDatastore(models.CollectionMembers.String(), "SELECT"))
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := mr.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryMemberGetAll)
	if err != nil {
		err = classifyError(err)
		return
	}
	defer rows.Close()

	result = []models.Member{}
	for rows.Next() {
		var member models.Member
		err = rows.Scan(
			&member.MemberID,
			&member.FullName,
			&member.PhoneNumber,
			&member.Balance,
			&member.HasAppAccount,
			&member.CreatedAt,
		)
		if err != nil {
			return nil, classifyError(err)
		}
		result = append(result, member)
	}

	if err = rows.Err(); err != nil {
		return nil, classifyError(err)
	}

	return
}
