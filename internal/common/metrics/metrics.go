package metrics

import (
	"database/sql"
	"fmt"
	"time"

	prometheusmetrics "github.com/deathowl/go-metrics-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	saramaMetrics "github.com/rcrowley/go-metrics"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
)

type Metrics interface {
	RegisterDB(db *sql.DB, role string, dbName string) error
	RegisterRedis(client redisprometheus.StatGetter, serviceName, namespace string) error
	SaramaRegistry(name string, flushInterval time.Duration) saramaMetrics.Registry
	PrometheusRegisterer() prometheus.Registerer
	PrometheusGatherer() prometheus.Gatherer
	GetPublisherPrometheus() *PublisherPrometheusMetrics
	GetLoanPrometheus() *LoanPrometheusMetrics
	GetAggregatorPrometheus() *AggregatorPrometheusMetrics
}

type metrics struct {
	reg               prometheus.Registerer
	gatherer          prometheus.Gatherer
	publisherMetrics  *PublisherPrometheusMetrics
	loanMetrics       *LoanPrometheusMetrics
	aggregatorMetrics *AggregatorPrometheusMetrics
}

func New() Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers every collector on reg. When reg is also a
// Gatherer it backs the /metrics endpoint.
func NewWithRegisterer(reg prometheus.Registerer) Metrics {
	gatherer, ok := reg.(prometheus.Gatherer)
	if !ok {
		gatherer = prometheus.DefaultGatherer
	}

	return &metrics{
		reg:               reg,
		gatherer:          gatherer,
		publisherMetrics:  newPublisherPrometheusMetrics(reg),
		loanMetrics:       newLoanPrometheusMetrics(reg),
		aggregatorMetrics: newAggregatorPrometheusMetrics(reg),
	}
}

func (m *metrics) RegisterDB(db *sql.DB, role string, dbName string) error {
	return m.reg.Register(collectors.NewDBStatsCollector(db, fmt.Sprintf("%s_%s", dbName, role)))
}

func (m *metrics) RegisterRedis(client redisprometheus.StatGetter, serviceName, namespace string) error {
	return m.reg.Register(redisprometheus.NewCollector(BuildFQName(serviceName, namespace), "redis", client))
}

func (m *metrics) SaramaRegistry(name string, flushInterval time.Duration) saramaMetrics.Registry {
	appMetrics := saramaMetrics.NewPrefixedRegistry(FlattenName(name) + "_")
	prometheusClient := prometheusmetrics.NewPrometheusProvider(
		appMetrics, "", "", m.reg, flushInterval,
	)
	go prometheusClient.UpdatePrometheusMetrics()

	return appMetrics
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) PrometheusGatherer() prometheus.Gatherer {
	return m.gatherer
}

func (m *metrics) GetPublisherPrometheus() *PublisherPrometheusMetrics {
	return m.publisherMetrics
}

func (m *metrics) GetLoanPrometheus() *LoanPrometheusMetrics {
	return m.loanMetrics
}

func (m *metrics) GetAggregatorPrometheus() *AggregatorPrometheusMetrics {
	return m.aggregatorMetrics
}
