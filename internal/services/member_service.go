package services

import (
	"context"
	"fmt"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"
	"github.com/unionconnect/go-wallet-admin/internal/common/validation"
	"github.com/unionconnect/go-wallet-admin/internal/models"
	"github.com/unionconnect/go-wallet-admin/internal/monitoring"
)

//go:generate mockgen -source=member_service.go -destination=mock/member_service.go -package=mock
type MemberService interface {
	// CreateMember enrolls a prospective account holder. Each memberId can be
	// enrolled once.
	CreateMember(ctx context.Context, req models.CreateMemberRequest) (models.Member, error)
}

type member service

var _ MemberService = (*member)(nil)

func (s *member) CreateMember(ctx context.Context, req models.CreateMemberRequest) (out models.Member, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if err = validation.ValidateStruct(req); err != nil {
		err = fmt.Errorf("%w: %w", common.ErrValidation, err)
		return
	}

	in := req.Normalize()
	if in.Balance.IsNegative() {
		err = common.ErrNegativeOpeningCredit
		return
	}

	out, err = s.srv.sqlRepo.GetMemberRepository().Create(ctx, in)
	if err != nil {
		return
	}

	xlog.Info(ctx, "[MEMBER-ENROLLMENT]",
		xlog.String("memberId", out.MemberID),
		xlog.String("openingCredit", out.Balance.StringFixed(models.MoneyScale)),
	)

	return
}
