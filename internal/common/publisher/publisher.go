package publisher

//go:generate mockgen -source=publisher.go -destination=mock/publisher.go -package=mock

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"
	"github.com/unionconnect/go-wallet-admin/internal/common/metrics"

	"github.com/Shopify/sarama"
)

const logIdentifier = "[GENERAL-PUBLISHER]"

type Publisher interface {
	Publish(ctx context.Context, message any, opts ...PublishOption) error
}

type publishOptions struct {
	key     string
	headers map[string]string
}

type PublishOption func(*publishOptions)

func WithKey(key string) PublishOption {
	return func(opts *publishOptions) {
		opts.key = key
	}
}

func WithHeaders(headers map[string]string) PublishOption {
	return func(opts *publishOptions) {
		opts.headers = headers
	}
}

type publisher struct {
	producer sarama.SyncProducer
	topic    string
	metrics  *metrics.PublisherPrometheusMetrics
}

// NewPublisher publishes JSON messages to topic. mtc may be nil.
func NewPublisher(p sarama.SyncProducer, topic string, mtc *metrics.PublisherPrometheusMetrics) Publisher {
	return publisher{
		producer: p,
		topic:    topic,
		metrics:  mtc,
	}
}

func (d publisher) Publish(ctx context.Context, message any, opts ...PublishOption) (err error) {
	startTime := time.Now()
	defer func() { d.metrics.ObservePublish(startTime, d.topic, err) }()

	options := &publishOptions{}
	for _, opt := range opts {
		opt(options)
	}

	msg, err := d.buildMessage(message, options)
	if err != nil {
		xlog.Error(ctx, logIdentifier, xlog.String("status", "failed build message"), xlog.String("topic", d.topic), xlog.Err(err))
		return err
	}

	partition, offset, err := d.producer.SendMessage(msg)
	if err != nil {
		err = fmt.Errorf("%w: send to %s: %v", common.ErrUnavailable, d.topic, err)
		xlog.Error(ctx, logIdentifier, xlog.String("status", "failed send message"), xlog.String("topic", d.topic), xlog.Err(err))
		return err
	}

	xlog.Info(ctx, logIdentifier,
		xlog.String("status", "success publish message"),
		xlog.String("topic", d.topic),
		xlog.String("key", options.key),
		xlog.Int("partition", int(partition)),
		xlog.Int64("offset", offset),
		xlog.Duration("latency", time.Since(startTime)),
	)

	return nil
}

func (d publisher) buildMessage(message any, opts *publishOptions) (*sarama.ProducerMessage, error) {
	payload, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", message, err)
	}

	msg := &sarama.ProducerMessage{
		Topic:   d.topic,
		Value:   sarama.ByteEncoder(payload),
		Headers: recordHeaders(opts.headers),
	}
	if opts.key != "" {
		msg.Key = sarama.StringEncoder(opts.key)
	}

	return msg, nil
}

// recordHeaders sorts headers by key so consumers see a stable order.
func recordHeaders(headers map[string]string) []sarama.RecordHeader {
	if len(headers) == 0 {
		return nil
	}

	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]sarama.RecordHeader, 0, len(keys))
	for _, key := range keys {
		out = append(out, sarama.RecordHeader{Key: []byte(key), Value: []byte(headers[key])})
	}
	return out
}
