// Package aggregator folds the four live collection feeds into one immutable
// models.Snapshot. Feed callbacks only enqueue events; a single loop goroutine
// applies them one at a time, so the snapshot is never mutated in parallel.
package aggregator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"
	"github.com/unionconnect/go-wallet-admin/internal/common/metrics"
	"github.com/unionconnect/go-wallet-admin/internal/models"
	"github.com/unionconnect/go-wallet-admin/internal/projection"
	"github.com/unionconnect/go-wallet-admin/internal/repositories"
)

const (
	logPrefix         = "[AGGREGATOR]"
	defaultEventQueue = 64

	feedErrorPermission = "permission"
	feedErrorOther      = "other"
)

// Observer is told about feed failures. It is called from the event loop.
type Observer interface {
	OnFeedError(collection models.Collection, err error)
}

type ObserverFunc func(collection models.Collection, err error)

func (f ObserverFunc) OnFeedError(collection models.Collection, err error) {
	f(collection, err)
}

type logObserver struct{}

func (logObserver) OnFeedError(collection models.Collection, err error) {
	xlog.Warn(context.Background(), logPrefix,
		xlog.String("collection", collection.String()),
		xlog.String("status", "feed error"),
		xlog.Err(err),
	)
}

// event replaces one collection of the snapshot, or reports a feed error
// when err is set.
type event struct {
	collection models.Collection
	replace    func(next *models.Snapshot)
	err        error
	at         time.Time
}

type Aggregator struct {
	current  atomic.Pointer[models.Snapshot]
	events   chan event
	observer Observer
	metrics  *metrics.AggregatorPrometheusMetrics
	now      func() time.Time

	subMu       sync.Mutex
	subscribers map[int]chan *models.Snapshot
	nextSubID   int

	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
	stopped   chan struct{}
}

type Option func(*Aggregator)

func WithObserver(o Observer) Option {
	return func(a *Aggregator) {
		if o != nil {
			a.observer = o
		}
	}
}

func WithMetrics(m *metrics.AggregatorPrometheusMetrics) Option {
	return func(a *Aggregator) {
		a.metrics = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		a.now = now
	}
}

func WithEventQueue(size int) Option {
	return func(a *Aggregator) {
		if size > 0 {
			a.events = make(chan event, size)
		}
	}
}

func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		events:      make(chan event, defaultEventQueue),
		observer:    logObserver{},
		now:         time.Now,
		subscribers: map[int]chan *models.Snapshot{},
		done:        make(chan struct{}),
		stopped:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.current.Store(models.EmptySnapshot())

	return a
}

// Current returns the latest snapshot. The returned value must not be modified.
func (a *Aggregator) Current() *models.Snapshot {
	return a.current.Load()
}

// Start runs the event loop until Stop is called.
func (a *Aggregator) Start() {
	a.startOnce.Do(func() {
		go a.loop()
	})
}

// Stop ends the event loop and waits for it. Events enqueued after Stop are dropped.
func (a *Aggregator) Stop() {
	a.stopOnce.Do(func() {
		close(a.done)
	})
	// a loop that never started has nothing to wait for
	a.startOnce.Do(func() { close(a.stopped) })
	<-a.stopped

	a.subMu.Lock()
	for id, ch := range a.subscribers {
		close(ch)
		delete(a.subscribers, id)
	}
	a.subMu.Unlock()
}

// Subscribe returns a channel receiving the newest snapshot after each change.
// Slow readers only see the latest value. cancel releases the channel.
func (a *Aggregator) Subscribe() (updates <-chan *models.Snapshot, cancel func()) {
	ch := make(chan *models.Snapshot, 1)

	a.subMu.Lock()
	select {
	case <-a.done:
		a.subMu.Unlock()
		close(ch)
		return ch, func() {}
	default:
	}
	id := a.nextSubID
	a.nextSubID++
	a.subscribers[id] = ch
	a.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			a.subMu.Lock()
			defer a.subMu.Unlock()
			if sub, ok := a.subscribers[id]; ok {
				close(sub)
				delete(a.subscribers, id)
			}
		})
	}
}

func (a *Aggregator) loop() {
	defer close(a.stopped)

	for {
		select {
		case <-a.done:
			return
		case ev := <-a.events:
			a.apply(ev)
		}
	}
}

func (a *Aggregator) enqueue(ev event) {
	select {
	case <-a.done:
	case a.events <- ev:
	}
}

func (a *Aggregator) apply(ev event) {
	ctx := xlog.WithFields(context.Background(), xlog.String("collection", ev.collection.String()))

	if ev.err != nil {
		permission := errors.Is(ev.err, common.ErrPermissionDenied)
		kind := feedErrorOther
		if permission {
			kind = feedErrorPermission
		}
		a.metrics.IncFeedError(ev.collection.String(), kind)
		a.observer.OnFeedError(ev.collection, ev.err)

		if !permission {
			return
		}
		// a collection the session can no longer read must not stay visible
		ev.replace = clearCollection(ev.collection)
	}

	next := fold(a.Current(), ev)
	a.current.Store(next)
	a.metrics.IncFeedEvent(ev.collection.String())
	a.metrics.SetStats(
		next.Stats.TotalUsers,
		next.Stats.PendingLoans,
		next.Stats.TotalTransactions,
		next.Stats.TotalVolume,
		next.Revision,
	)
	xlog.Debug(ctx, logPrefix,
		xlog.Any("revision", next.Revision),
		xlog.Int("pendingLoans", next.Stats.PendingLoans),
	)

	a.publish(next)
}

func (a *Aggregator) publish(s *models.Snapshot) {
	a.subMu.Lock()
	defer a.subMu.Unlock()

	for _, ch := range a.subscribers {
		// keep only the newest snapshot for slow readers
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
}

// fold builds the snapshot following prev after ev. Only the collection named
// by ev is replaced; every other slice is shared with prev.
func fold(prev *models.Snapshot, ev event) *models.Snapshot {
	next := *prev
	next.UpdatedAt = make(map[models.Collection]time.Time, len(prev.UpdatedAt)+1)
	for k, v := range prev.UpdatedAt {
		next.UpdatedAt[k] = v
	}

	ev.replace(&next)
	next.UpdatedAt[ev.collection] = ev.at
	next.Revision = prev.Revision + 1
	next.Stats = projection.ComputeStats(&next)

	return &next
}

func clearCollection(collection models.Collection) func(next *models.Snapshot) {
	return func(next *models.Snapshot) {
		switch collection {
		case models.CollectionUsers:
			next.Accounts = []models.Account{}
		case models.CollectionMembers:
			next.Members = []models.Member{}
		case models.CollectionTransactions:
			next.Transactions = []models.Transaction{}
		case models.CollectionLoanRequests:
			next.Loans = []models.LoanRequest{}
		}
	}
}

func (a *Aggregator) AccountsHandler() repositories.FeedHandler[models.Account] {
	return handler(a, models.CollectionUsers, func(next *models.Snapshot, items []models.Account) {
		next.Accounts = items
	})
}

func (a *Aggregator) MembersHandler() repositories.FeedHandler[models.Member] {
	return handler(a, models.CollectionMembers, func(next *models.Snapshot, items []models.Member) {
		next.Members = items
	})
}

func (a *Aggregator) TransactionsHandler() repositories.FeedHandler[models.Transaction] {
	return handler(a, models.CollectionTransactions, func(next *models.Snapshot, items []models.Transaction) {
		next.Transactions = items
	})
}

func (a *Aggregator) LoansHandler() repositories.FeedHandler[models.LoanRequest] {
	return handler(a, models.CollectionLoanRequests, func(next *models.Snapshot, items []models.LoanRequest) {
		next.Loans = items
	})
}

func handler[T any](a *Aggregator, collection models.Collection, set func(next *models.Snapshot, items []T)) repositories.FeedHandler[T] {
	return repositories.FeedHandler[T]{
		OnSnapshot: func(items []T) {
			if items == nil {
				items = []T{}
			}
			a.enqueue(event{
				collection: collection,
				replace:    func(next *models.Snapshot) { set(next, items) },
				at:         a.now(),
			})
		},
		OnError: func(err error) {
			a.enqueue(event{collection: collection, err: err, at: a.now()})
		},
	}
}
