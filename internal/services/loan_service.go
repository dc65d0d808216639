package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	"github.com/unionconnect/go-wallet-admin/internal/common/idgenerator"
	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"
	"github.com/unionconnect/go-wallet-admin/internal/common/metrics"
	"github.com/unionconnect/go-wallet-admin/internal/common/publisher"
	"github.com/unionconnect/go-wallet-admin/internal/models"
	"github.com/unionconnect/go-wallet-admin/internal/monitoring"
	"github.com/unionconnect/go-wallet-admin/internal/repositories"

	"github.com/shopspring/decimal"
)

const logLoanPrefix = "[LOAN-DECISION]"

//go:generate mockgen -source=loan_service.go -destination=mock/loan_service.go -package=mock
type LoanService interface {
	// ApproveLoan credits the loan amount to its owner and records the
	// disbursement in one atomic unit, returning the ledger entry id. It never
	// retries; conflict and unavailable errors are left to the caller.
	ApproveLoan(ctx context.Context, loanID, approverID string) (transactionID string, err error)

	// RejectLoan moves a pending loan to rejected. A blank reason fails
	// before the store is touched.
	RejectLoan(ctx context.Context, loanID, rejecterID, reason string) error

	GetList(ctx context.Context, filter models.LoanFilter) ([]models.LoanRequest, error)
}

type loan service

var _ LoanService = (*loan)(nil)

func (s *loan) ApproveLoan(ctx context.Context, loanID, approverID string) (transactionID string, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	var (
		startTime = time.Now()
		approved  models.LoanRequest
	)
	defer func() {
		s.srv.metrics.GetLoanPrometheus().RecordDecision(metrics.DecisionApprove, decisionOutcome(err), approved.Amount, startTime)
	}()

	if err = validateDecisionInput(loanID, approverID); err != nil {
		return
	}

	err = s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		lr, err := r.GetLoanRequestRepository().GetByID(ctx, loanID)
		if err != nil {
			return err
		}

		if !lr.IsPending() {
			return fmt.Errorf("%w: status %s", common.ErrLoanNotPending, lr.Status)
		}

		if !lr.Amount.IsPositive() {
			return fmt.Errorf("%w: %s", common.ErrLoanInvalidAmount, lr.Amount)
		}

		balance, err := r.GetUserRepository().GetBalance(ctx, lr.UserID)
		if err != nil {
			return err
		}

		if err = r.GetLoanRequestRepository().MarkApproved(ctx, lr.ID, approverID); err != nil {
			return err
		}

		if err = r.GetUserRepository().IncrementBalance(ctx, lr.UserID, lr.Amount, balance.Version); err != nil {
			return err
		}

		entry := models.NewLoanDisbursement(s.srv.idgenerator.Generate(idgenerator.PrefixTransaction), lr, balance.Balance)
		if err = entry.Verify(); err != nil {
			return err
		}

		created, err := r.GetTransactionRepository().Create(ctx, entry)
		if err != nil {
			return err
		}

		approved = lr
		transactionID = created.ID

		return nil
	})
	if err != nil {
		transactionID = ""
		approved = models.LoanRequest{}
		xlog.Warn(ctx, logLoanPrefix,
			xlog.String("decision", metrics.DecisionApprove),
			xlog.String("loanId", loanID),
			xlog.Bool("retryable", common.IsRetryable(err)),
			xlog.Err(err),
		)
		return
	}

	xlog.Info(ctx, logLoanPrefix,
		xlog.String("decision", metrics.DecisionApprove),
		xlog.String("loanId", loanID),
		xlog.String("userId", approved.UserID),
		xlog.String("transactionId", transactionID),
		xlog.String("amount", approved.Amount.StringFixed(models.MoneyScale)),
	)

	s.publishDecision(ctx, models.LoanDecisionEvent{
		LoanID:        approved.ID,
		UserID:        approved.UserID,
		Status:        models.LoanStatusApproved.String(),
		DecidedBy:     approverID,
		Amount:        approved.Amount.StringFixed(models.MoneyScale),
		TransactionID: transactionID,
		DecidedAt:     common.Now(),
	})

	return
}

func (s *loan) RejectLoan(ctx context.Context, loanID, rejecterID, reason string) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	startTime := time.Now()
	defer func() {
		s.srv.metrics.GetLoanPrometheus().RecordDecision(metrics.DecisionReject, decisionOutcome(err), decimal.Zero, startTime)
	}()

	reason = strings.TrimSpace(reason)
	if reason == "" {
		err = common.ErrMissingReason
		return
	}

	if err = validateDecisionInput(loanID, rejecterID); err != nil {
		return
	}

	repo := s.srv.sqlRepo.GetLoanRequestRepository()
	err = repo.MarkRejected(ctx, loanID, rejecterID, reason)
	if errors.Is(err, common.ErrNoRowsAffected) {
		// nothing pending under loanID; tell a missing loan from a decided one
		lr, getErr := repo.GetByID(ctx, loanID)
		if getErr != nil {
			err = getErr
		} else {
			err = fmt.Errorf("%w: status %s", common.ErrLoanNotPending, lr.Status)
		}
	}
	if err != nil {
		xlog.Warn(ctx, logLoanPrefix,
			xlog.String("decision", metrics.DecisionReject),
			xlog.String("loanId", loanID),
			xlog.Err(err),
		)
		return
	}

	xlog.Info(ctx, logLoanPrefix,
		xlog.String("decision", metrics.DecisionReject),
		xlog.String("loanId", loanID),
	)

	s.publishDecision(ctx, models.LoanDecisionEvent{
		LoanID:    loanID,
		Status:    models.LoanStatusRejected.String(),
		DecidedBy: rejecterID,
		Reason:    reason,
		DecidedAt: common.Now(),
	})

	return
}

func (s *loan) GetList(ctx context.Context, filter models.LoanFilter) (out []models.LoanRequest, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if err = filter.Validate(); err != nil {
		return
	}

	return s.srv.sqlRepo.GetLoanRequestRepository().GetList(ctx, filter)
}

// publishDecision is best effort: the decision is already committed.
func (s *loan) publishDecision(ctx context.Context, event models.LoanDecisionEvent) {
	if !s.srv.conf.FeatureFlag.EnablePublishLoanDecision || s.srv.loanDecisionPub == nil {
		return
	}

	err := s.srv.loanDecisionPub.Publish(ctx, event,
		publisher.WithKey(event.LoanID),
		publisher.WithHeaders(map[string]string{"status": event.Status}),
	)
	if err != nil {
		xlog.Error(ctx, logLoanPrefix,
			xlog.String("status", "failed to publish loan decision"),
			xlog.String("loanId", event.LoanID),
			xlog.Err(err),
		)
	}
}

func validateDecisionInput(loanID, principalID string) error {
	if strings.TrimSpace(loanID) == "" {
		return common.ErrLoanIDRequired
	}
	if strings.TrimSpace(principalID) == "" {
		return common.ErrPrincipalRequired
	}
	return nil
}

func decisionOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, common.ErrValidation):
		return metrics.OutcomeValidation
	case errors.Is(err, common.ErrPrecondition):
		return metrics.OutcomePrecondition
	case errors.Is(err, common.ErrConflict):
		return metrics.OutcomeConflict
	case errors.Is(err, common.ErrPermissionDenied):
		return metrics.OutcomePermission
	case errors.Is(err, common.ErrUnavailable):
		return metrics.OutcomeUnavailable
	}
	return metrics.OutcomeError
}
