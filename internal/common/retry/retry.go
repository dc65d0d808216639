package retry

import (
	"context"
	"time"

	"github.com/unionconnect/go-wallet-admin/internal/config"

	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultMaxRetries      uint64 = 3
	DefaultInitialInterval        = 50 * time.Millisecond
)

type Retryer interface {
	Retry(ctx context.Context, operation func() error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	ebCfg config.ExponentialBackOffConfig
}

/*
NewExponentialBackOff will init Retryer interface.
This retryer implement exponential backoff mechanism with a bounded number of attempts.

Example:

	err := retryer.Retry(ctx, func() error {
		err := someOperation()
		if err != nil && !common.IsRetryable(err) {
			return retryer.StopRetryWithErr(err)
		}
		return err
	})
*/
func NewExponentialBackOff(ebCfg config.ExponentialBackOffConfig) Retryer {
	if ebCfg.MaxBackoffTime <= 0 {
		ebCfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}

	if ebCfg.BackoffMultiplier <= 0 {
		ebCfg.BackoffMultiplier = backoff.DefaultMultiplier
	}

	if ebCfg.MaxRetries <= 0 {
		ebCfg.MaxRetries = DefaultMaxRetries
	}

	if ebCfg.InitialInterval <= 0 {
		ebCfg.InitialInterval = DefaultInitialInterval
	}

	return &exponentialBackoff{ebCfg: ebCfg}
}

/*
Retry will create ExponentialBackOff instance for every execution.

"operation" is called until it succeeds, returns an error wrapped with StopRetryWithErr,
the context is done or MaxRetries retries were spent. The last error of "operation" is returned.
*/
func (r *exponentialBackoff) Retry(ctx context.Context, operation func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = r.ebCfg.InitialInterval
	eb.MaxElapsedTime = r.ebCfg.MaxBackoffTime
	eb.Multiplier = r.ebCfg.BackoffMultiplier

	attempt := 0
	notify := func(err error, next time.Duration) {
		attempt++
		xlog.Debug(ctx, "[RETRY] operation failed, retrying",
			xlog.Int("attempt", attempt),
			xlog.Duration("next", next),
			xlog.Err(err))
	}

	return backoff.RetryNotify(operation, backoff.WithContext(backoff.WithMaxRetries(eb, r.ebCfg.MaxRetries), ctx), notify)
}

// StopRetryWithErr will stop retrying and return the error.
// This function should be called inside "operation" func.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}
