package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"

	OutcomeSuccess      = "success"
	OutcomeValidation   = "validation"
	OutcomePrecondition = "precondition"
	OutcomeConflict     = "conflict"
	OutcomePermission   = "permission"
	OutcomeUnavailable  = "unavailable"
	OutcomeError        = "error"
)

type LoanPrometheusMetrics struct {
	decisions       *prometheus.CounterVec
	disbursedAmount prometheus.Counter
	decisionLatency *prometheus.HistogramVec
}

func newLoanPrometheusMetrics(reg prometheus.Registerer) *LoanPrometheusMetrics {
	mtc := &LoanPrometheusMetrics{
		decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_admin_loan_decisions_total",
				Help: "Number of loan decisions by decision and outcome",
			},
			[]string{"decision", "outcome"},
		),
		disbursedAmount: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wallet_admin_loan_disbursed_amount_total",
				Help: "Sum of amounts credited by approved loans",
			},
		),
		decisionLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wallet_admin_loan_decision_duration_seconds",
				Help:    "Duration of a loan decision including call site retries.",
				Buckets: []float64{0.001, 0.010, 0.050, 0.100, 0.200, 0.500, 1, 2, 5, 10},
			},
			[]string{"decision"},
		),
	}

	reg.MustRegister(mtc.decisions, mtc.disbursedAmount, mtc.decisionLatency)

	return mtc
}

// RecordDecision counts one finished decision. amount is added to the
// disbursed total only for successful approvals.
func (m *LoanPrometheusMetrics) RecordDecision(decision, outcome string, amount decimal.Decimal, startTime time.Time) {
	if m == nil {
		return
	}

	m.decisions.WithLabelValues(decision, outcome).Inc()
	m.decisionLatency.WithLabelValues(decision).Observe(time.Since(startTime).Seconds())

	if decision == DecisionApprove && outcome == OutcomeSuccess {
		value, _ := amount.Float64()
		m.disbursedAmount.Add(value)
	}
}
