package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"

	"golang.org/x/exp/slices"
)

// DefaultStopTimeout applies when no positive stop timeout is configured.
const DefaultStopTimeout = 10 * time.Second

type ProcessStarter func() error

type ProcessStopper func(ctx context.Context) error

type ProcessStartStopper interface {
	Start() ProcessStarter
	Stop() ProcessStopper
}

// StartProcessAtBackground runs every starter in its own goroutine. The
// returned channel receives the error of each starter that fails.
func StartProcessAtBackground(ps ...ProcessStarter) <-chan error {
	failed := make(chan error, len(ps))

	for _, p := range ps {
		if p == nil {
			continue
		}
		go func(start ProcessStarter) {
			if err := start(); err != nil {
				xlog.Error(context.Background(), "[GRACEFUL] process exited", xlog.Err(err))
				failed <- err
			}
		}(p)
	}

	return failed
}

// StopProcessAtBackground blocks until SIGINT, SIGTERM or SIGUSR1 arrives or a
// started process fails, then stops ps.
func StopProcessAtBackground(duration time.Duration, failed <-chan error, ps ...ProcessStopper) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1)
	defer signal.Stop(signals)

	select {
	case sig := <-signals:
		xlog.Info(context.Background(), "[GRACEFUL] shutting down", xlog.String("signal", sig.String()))
	case err := <-failed:
		xlog.Warn(context.Background(), "[GRACEFUL] shutting down after process failure", xlog.Err(err))
	}

	StopProcess(duration, ps...)
}

// StopProcess calls every stopper in reverse registration order, each with its own timeout.
func StopProcess(duration time.Duration, ps ...ProcessStopper) {
	if duration <= 0 {
		duration = DefaultStopTimeout
	}

	ps = slices.Clone(ps)
	slices.Reverse(ps)

	for _, p := range ps {
		if p != nil {
			stopWithTimeout(duration, p)
		}
	}
}

func stopWithTimeout(duration time.Duration, p ProcessStopper) {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	if err := p(ctx); err != nil {
		xlog.Warn(ctx, "[GRACEFUL] failed to stop process", xlog.Err(err))
	}
}
