package publisher

import (
	"time"

	"github.com/Shopify/sarama"
	goMetrics "github.com/rcrowley/go-metrics"
)

const defaultTimeout = 2 * time.Second

type Option func(*sarama.Config)

func NewKafkaSyncProducer(brokers []string, opts ...Option) (sarama.SyncProducer, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewProducerConfig(opts...))
	if err != nil {
		return nil, err
	}

	return producer, nil
}

// NewProducerConfig returns the sync producer configuration shared by every topic.
func NewProducerConfig(opts ...Option) *sarama.Config {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.Return.Errors = true
	saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	saramaCfg.Producer.Idempotent = true
	saramaCfg.Net.MaxOpenRequests = 1
	WithTimeout(defaultTimeout)(saramaCfg)
	saramaCfg.Version = sarama.V2_1_0_0

	for _, opt := range opts {
		opt(saramaCfg)
	}

	return saramaCfg
}

// WithTimeout bounds the broker acknowledgement and every network call.
// Non-positive values keep the current setting.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *sarama.Config) {
		if timeout <= 0 {
			return
		}
		cfg.Producer.Timeout = timeout
		cfg.Net.DialTimeout = timeout
		cfg.Net.ReadTimeout = timeout
		cfg.Net.WriteTimeout = timeout
	}
}

func WithClientID(clientID string) Option {
	return func(cfg *sarama.Config) {
		cfg.ClientID = clientID
	}
}

// WithMetricRegistry exports the sarama client metrics through registry.
func WithMetricRegistry(registry goMetrics.Registry) Option {
	return func(cfg *sarama.Config) {
		cfg.MetricRegistry = registry
	}
}
