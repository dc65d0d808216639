package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"
	"github.com/unionconnect/go-wallet-admin/internal/models"

	"github.com/lib/pq"
)

//go:generate mockgen -source=feed.go -destination=mock/feed.go -package=mock

const (
	logFeedPrefix       = "[FEED]"
	defaultPingInterval = 90 * time.Second
)

// FeedHandler receives every full result set of a watched collection.
// OnSnapshot and OnError are called from a single goroutine per subscription.
type FeedHandler[T any] struct {
	OnSnapshot func(items []T)
	OnError    func(err error)
}

type Subscription interface {
	// Stop ends the subscription and waits for its goroutine to exit. It is safe to call more than once.
	Stop() error
}

// FeedRepository opens live subscriptions on the store collections. Each
// subscription delivers the current result set once and again after every
// committed change or reconnect. A permission error ends the subscription.
type FeedRepository interface {
	WatchAccounts(ctx context.Context, h FeedHandler[models.Account]) (Subscription, error)
	WatchMembers(ctx context.Context, h FeedHandler[models.Member]) (Subscription, error)
	WatchTransactions(ctx context.Context, limit int, h FeedHandler[models.Transaction]) (Subscription, error)
	WatchLoanRequests(ctx context.Context, h FeedHandler[models.LoanRequest]) (Subscription, error)
}

// Listener is the part of *pq.Listener used by the feed.
type Listener interface {
	Listen(channel string) error
	NotificationChannel() <-chan *pq.Notification
	Ping() error
	Close() error
}

type ListenerFactory func(eventCallback pq.EventCallbackType) Listener

// NewPQListenerFactory opens one dedicated LISTEN connection per subscription.
// dsn must point at the primary: standbys refuse LISTEN.
func NewPQListenerFactory(dsn string, minReconnectInterval, maxReconnectInterval time.Duration) ListenerFactory {
	return func(eventCallback pq.EventCallbackType) Listener {
		return pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval, eventCallback)
	}
}

// ChannelName is the NOTIFY channel the triggers of collection publish on.
func ChannelName(collection models.Collection) string {
	return fmt.Sprintf("%s_changed", collection)
}

type feedRepository struct {
	repo         SQLRepository
	newListener  ListenerFactory
	pingInterval time.Duration
}

type FeedOption func(*feedRepository)

func WithPingInterval(interval time.Duration) FeedOption {
	return func(f *feedRepository) {
		f.pingInterval = interval
	}
}

func NewFeedRepository(repo SQLRepository, newListener ListenerFactory, opts ...FeedOption) FeedRepository {
	f := &feedRepository{
		repo:         repo,
		newListener:  newListener,
		pingInterval: defaultPingInterval,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *feedRepository) WatchAccounts(ctx context.Context, h FeedHandler[models.Account]) (Subscription, error) {
	return watch(ctx, f, models.CollectionUsers, f.repo.GetUserRepository().GetAll, h)
}

func (f *feedRepository) WatchMembers(ctx context.Context, h FeedHandler[models.Member]) (Subscription, error) {
	return watch(ctx, f, models.CollectionMembers, f.repo.GetMemberRepository().GetAll, h)
}

func (f *feedRepository) WatchTransactions(ctx context.Context, limit int, h FeedHandler[models.Transaction]) (Subscription, error) {
	fetch := func(ctx context.Context) ([]models.Transaction, error) {
		return f.repo.GetTransactionRepository().GetRecent(ctx, limit)
	}
	return watch(ctx, f, models.CollectionTransactions, fetch, h)
}

func (f *feedRepository) WatchLoanRequests(ctx context.Context, h FeedHandler[models.LoanRequest]) (Subscription, error) {
	fetch := func(ctx context.Context) ([]models.LoanRequest, error) {
		return f.repo.GetLoanRequestRepository().GetList(ctx, models.LoanFilter{})
	}
	return watch(ctx, f, models.CollectionLoanRequests, fetch, h)
}

type subscription struct {
	listener Listener
	cancel   context.CancelFunc
	stopped  chan struct{}
	once     sync.Once
	err      error
}

func (s *subscription) Stop() error {
	s.once.Do(func() {
		s.cancel()
		s.err = s.listener.Close()
		<-s.stopped
	})
	return s.err
}

func watch[T any](
	ctx context.Context,
	f *feedRepository,
	collection models.Collection,
	fetch func(ctx context.Context) ([]T, error),
	h FeedHandler[T],
) (Subscription, error) {
	channel := ChannelName(collection)
	logCtx := xlog.WithFields(ctx, xlog.String("collection", collection.String()))

	listener := f.newListener(func(event pq.ListenerEventType, err error) {
		switch event {
		case pq.ListenerEventDisconnected, pq.ListenerEventConnectionAttemptFailed:
			xlog.Warn(logCtx, logFeedPrefix, xlog.String("status", "listener disconnected"), xlog.Err(err))
		case pq.ListenerEventReconnected:
			xlog.Info(logCtx, logFeedPrefix, xlog.String("status", "listener reconnected"))
		}
	})

	if err := listener.Listen(channel); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("listen %s: %w", channel, classifyError(err))
	}

	runCtx, cancel := context.WithCancel(ctx)
	s := &subscription{
		listener: listener,
		cancel:   cancel,
		stopped:  make(chan struct{}),
	}

	// notifications are raised on the primary; a replica may not have the commit yet
	fetchPrimary := func(ctx context.Context) ([]T, error) {
		return fetch(ReadFromPrimary(ctx))
	}

	go func() {
		defer close(s.stopped)
		runFeed(runCtx, logCtx, listener, f.pingInterval, fetchPrimary, h)
	}()

	return s, nil
}

func runFeed[T any](
	ctx, logCtx context.Context,
	listener Listener,
	pingInterval time.Duration,
	fetch func(ctx context.Context) ([]T, error),
	h FeedHandler[T],
) {
	// deliver returns false once the subscription must end.
	deliver := func() bool {
		items, err := fetch(ctx)
		if ctx.Err() != nil {
			return false
		}
		if err != nil {
			xlog.Warn(logCtx, logFeedPrefix, xlog.String("status", "fetch failed"), xlog.Err(err))
			if h.OnError != nil {
				h.OnError(err)
			}
			return !errors.Is(err, common.ErrPermissionDenied)
		}
		if h.OnSnapshot != nil {
			h.OnSnapshot(items)
		}
		return true
	}

	if !deliver() {
		return
	}

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	notifications := listener.NotificationChannel()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-notifications:
			if !ok {
				return
			}
			// a nil notification means the connection was re-established and
			// changes may have been missed; both cases refetch the whole set.
			drain(notifications)
			if !deliver() {
				return
			}
		case <-ticker.C:
			if err := listener.Ping(); err != nil {
				xlog.Debug(logCtx, logFeedPrefix, xlog.String("status", "ping failed"), xlog.Err(err))
			}
		}
	}
}

// drain discards notifications already queued so a burst of commits costs one refetch.
func drain(notifications <-chan *pq.Notification) {
	for {
		select {
		case _, ok := <-notifications:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
