package monitoring

import (
	"time"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"
)

var messagePrefix = map[string]string{
	LayerRepository: "[REPOSITORY]",
	LayerService:    "[SERVICE]",
	LayerDelivery:   "[DELIVERY]",
	LayerAggregator: "[AGGREGATOR]",
	LayerUnknown:    "[-]",
}

type finishOptions struct {
	err    error
	fields []xlog.Field
}

type FinishOption func(*finishOptions)

func WithFinishCheckError(err error) FinishOption {
	return func(o *finishOptions) {
		o.err = err
	}
}

func WithFinishXlogFields(fields ...xlog.Field) FinishOption {
	return func(o *finishOptions) {
		o.fields = append(o.fields, fields...)
	}
}

// Finish ends the segment and logs the outcome. Successful repository calls
// are not logged, the service or delivery above them already is.
func (m *Monitor) Finish(opts ...FinishOption) {
	o := &finishOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if m.segment != nil {
		defer m.segment.End()
	}

	fields := append(o.fields,
		xlog.String("segment", m.segmentName),
		xlog.Duration("processDuration", time.Since(m.start)),
	)

	switch {
	case o.err != nil:
		fields = append(fields,
			xlog.String("status", "error"),
			xlog.Bool("retryable", common.IsRetryable(o.err)),
			xlog.Err(o.err),
		)
		xlog.Warn(m.ctx, messagePrefix[m.layer], fields...)
	case m.layer != LayerRepository:
		xlog.Info(m.ctx, messagePrefix[m.layer], append(fields, xlog.String("status", "success"))...)
	}
}
