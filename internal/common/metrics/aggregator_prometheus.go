package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

type AggregatorPrometheusMetrics struct {
	totalUsers        prometheus.Gauge
	pendingLoans      prometheus.Gauge
	totalTransactions prometheus.Gauge
	totalVolume       prometheus.Gauge
	revision          prometheus.Gauge
	feedEvents        *prometheus.CounterVec
	feedErrors        *prometheus.CounterVec
}

func newAggregatorPrometheusMetrics(reg prometheus.Registerer) *AggregatorPrometheusMetrics {
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
	}

	mtc := &AggregatorPrometheusMetrics{
		totalUsers:        gauge("wallet_admin_total_users", "Number of accounts in the current snapshot"),
		pendingLoans:      gauge("wallet_admin_pending_loans", "Number of pending loan requests in the current snapshot"),
		totalTransactions: gauge("wallet_admin_window_transactions", "Number of ledger entries in the transaction window"),
		totalVolume:       gauge("wallet_admin_window_volume", "Summed amount of ledger entries in the transaction window"),
		revision:          gauge("wallet_admin_snapshot_revision", "Revision of the current snapshot"),
		feedEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_admin_feed_events_total",
				Help: "Number of collection snapshots delivered by the change feed",
			},
			[]string{"collection"},
		),
		feedErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_admin_feed_errors_total",
				Help: "Number of change feed errors by collection and kind",
			},
			[]string{"collection", "kind"},
		),
	}

	reg.MustRegister(
		mtc.totalUsers,
		mtc.pendingLoans,
		mtc.totalTransactions,
		mtc.totalVolume,
		mtc.revision,
		mtc.feedEvents,
		mtc.feedErrors,
	)

	return mtc
}

func (m *AggregatorPrometheusMetrics) SetStats(totalUsers, pendingLoans, totalTransactions int, totalVolume decimal.Decimal, revision uint64) {
	if m == nil {
		return
	}

	volume, _ := totalVolume.Float64()
	m.totalUsers.Set(float64(totalUsers))
	m.pendingLoans.Set(float64(pendingLoans))
	m.totalTransactions.Set(float64(totalTransactions))
	m.totalVolume.Set(volume)
	m.revision.Set(float64(revision))
}

func (m *AggregatorPrometheusMetrics) IncFeedEvent(collection string) {
	if m == nil {
		return
	}
	m.feedEvents.WithLabelValues(collection).Inc()
}

func (m *AggregatorPrometheusMetrics) IncFeedError(collection, kind string) {
	if m == nil {
		return
	}
	m.feedErrors.WithLabelValues(collection, kind).Inc()
}
