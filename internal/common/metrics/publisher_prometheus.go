package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type PublisherPrometheusMetrics struct {
	duration *prometheus.HistogramVec
	messages *prometheus.CounterVec
}

func newPublisherPrometheusMetrics(reg prometheus.Registerer) *PublisherPrometheusMetrics {
	mtc := &PublisherPrometheusMetrics{
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wallet_admin_publish_duration_seconds",
				Help:    "Duration of loan decision event publishing in seconds",
				Buckets: []float64{0.001, 0.005, 0.010, 0.050, 0.100, 0.250, 0.500, 1, 2.5, 5},
			},
			[]string{"topic", "success"},
		),
		messages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_admin_published_messages_total",
				Help: "Number of events handed to the broker by topic and outcome",
			},
			[]string{"topic", "success"},
		),
	}

	reg.MustRegister(mtc.duration, mtc.messages)

	return mtc
}

// ObservePublish records one publish attempt that started at startTime.
func (m *PublisherPrometheusMetrics) ObservePublish(startTime time.Time, topic string, publishErr error) {
	if m == nil {
		return
	}

	success := strconv.FormatBool(publishErr == nil)
	m.duration.WithLabelValues(topic, success).Observe(time.Since(startTime).Seconds())
	m.messages.WithLabelValues(topic, success).Inc()
}
