package watcher

import (
	"context"
	"sync"

	"github.com/unionconnect/go-wallet-admin/internal/common/graceful"
	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"
	"github.com/unionconnect/go-wallet-admin/internal/models"
)

const logPrefix = "[WATCHER]"

type SnapshotSubscriber interface {
	Current() *models.Snapshot
	Subscribe() (<-chan *models.Snapshot, func())
}

// Reporter logs the derived stats of every snapshot revision it observes.
// It subscribes on construction, so revisions folded before Start runs are
// still seen.
type Reporter struct {
	source  SnapshotSubscriber
	updates <-chan *models.Snapshot
	cancel  func()

	done       chan struct{}
	stopOnce   sync.Once
	cancelOnce sync.Once

	mu       sync.Mutex
	reported uint64
}

var _ graceful.ProcessStartStopper = (*Reporter)(nil)

func NewReporter(source SnapshotSubscriber) *Reporter {
	updates, cancel := source.Subscribe()
	return &Reporter{
		source:  source,
		updates: updates,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
}

// Start blocks until Stop is called or the source closes its channel.
func (r *Reporter) Start() graceful.ProcessStarter {
	return func() error {
		defer r.release()

		r.report(r.source.Current())
		for {
			select {
			case <-r.done:
				return nil
			case snapshot, ok := <-r.updates:
				if !ok {
					return nil
				}
				r.report(snapshot)
			}
		}
	}
}

func (r *Reporter) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		r.stopOnce.Do(func() { close(r.done) })
		r.release()
		return nil
	}
}

func (r *Reporter) release() {
	r.cancelOnce.Do(r.cancel)
}

// Reported returns the last revision that was logged.
func (r *Reporter) Reported() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reported
}

func (r *Reporter) report(snapshot *models.Snapshot) {
	if snapshot == nil {
		return
	}

	r.mu.Lock()
	if snapshot.Revision <= r.reported {
		r.mu.Unlock()
		return
	}
	r.reported = snapshot.Revision
	r.mu.Unlock()

	xlog.Info(context.Background(), logPrefix,
		xlog.Any("revision", snapshot.Revision),
		xlog.Int("totalUsers", snapshot.Stats.TotalUsers),
		xlog.Int("pendingLoans", snapshot.Stats.PendingLoans),
		xlog.Int("totalTransactions", snapshot.Stats.TotalTransactions),
		xlog.String("totalVolume", snapshot.Stats.TotalVolume.StringFixed(models.MoneyScale)),
	)
}
