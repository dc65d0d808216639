package aggregator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"
	"github.com/unionconnect/go-wallet-admin/internal/config"
	"github.com/unionconnect/go-wallet-admin/internal/models"
	"github.com/unionconnect/go-wallet-admin/internal/repositories"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

var ErrSessionClosed = errors.New("aggregator session closed")

// Session owns the subscription set of one signed-in operator together with
// the aggregator the subscriptions feed. Close releases all of them.
type Session struct {
	feed   repositories.FeedRepository
	agg    *Aggregator
	window int

	mu      sync.Mutex
	subs    map[models.Collection]repositories.Subscription
	started bool
	closed  bool
}

// NewSession builds an idle session. window bounds the transaction feed and
// falls back to config.DefaultTransactionWindow when not positive.
func NewSession(feed repositories.FeedRepository, window int, opts ...Option) *Session {
	if window <= 0 {
		window = config.DefaultTransactionWindow
	}

	return &Session{
		feed:   feed,
		agg:    New(opts...),
		window: window,
		subs:   map[models.Collection]repositories.Subscription{},
	}
}

// Start opens the four subscriptions. When any of them cannot be opened the
// ones already open are released, the session is closed and the error is
// returned.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.started {
		return nil
	}

	s.agg.Start()

	var (
		mu   sync.Mutex
		subs = map[models.Collection]repositories.Subscription{}
	)
	keep := func(collection models.Collection, sub repositories.Subscription, err error) error {
		if err != nil {
			return fmt.Errorf("watch %s: %w", collection, err)
		}
		mu.Lock()
		subs[collection] = sub
		mu.Unlock()
		return nil
	}

	// subscriptions outlive Start, so they get ctx rather than a group context
	var eg errgroup.Group
	eg.Go(func() error {
		sub, err := s.feed.WatchAccounts(ctx, s.agg.AccountsHandler())
		return keep(models.CollectionUsers, sub, err)
	})
	eg.Go(func() error {
		sub, err := s.feed.WatchMembers(ctx, s.agg.MembersHandler())
		return keep(models.CollectionMembers, sub, err)
	})
	eg.Go(func() error {
		sub, err := s.feed.WatchTransactions(ctx, s.window, s.agg.TransactionsHandler())
		return keep(models.CollectionTransactions, sub, err)
	})
	eg.Go(func() error {
		sub, err := s.feed.WatchLoanRequests(ctx, s.agg.LoansHandler())
		return keep(models.CollectionLoanRequests, sub, err)
	})

	if err := eg.Wait(); err != nil {
		xlog.Warn(ctx, logPrefix, xlog.String("status", "session start failed"), xlog.Err(err))
		if stopErr := stopAll(subs); stopErr != nil {
			err = multierror.Append(err, stopErr)
		}
		s.agg.Stop()
		s.closed = true
		return err
	}

	s.subs = subs
	s.started = true
	xlog.Info(ctx, logPrefix, xlog.String("status", "session started"), xlog.Int("transactionWindow", s.window))

	return nil
}

// Close stops every subscription, then the event loop. Calling it again is a no-op.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	err := stopAll(s.subs)
	s.subs = map[models.Collection]repositories.Subscription{}
	s.agg.Stop()

	return err
}

// Stop adapts Close to the graceful stopper signature.
func (s *Session) Stop(_ context.Context) error {
	return s.Close()
}

func (s *Session) Current() *models.Snapshot {
	return s.agg.Current()
}

func (s *Session) Subscribe() (<-chan *models.Snapshot, func()) {
	return s.agg.Subscribe()
}

func stopAll(subs map[models.Collection]repositories.Subscription) error {
	var result *multierror.Error
	for _, collection := range models.Collections {
		sub, ok := subs[collection]
		if !ok || sub == nil {
			continue
		}
		if err := sub.Stop(); err != nil {
			result = multierror.Append(result, fmt.Errorf("stop %s: %w", collection, err))
		}
	}
	return result.ErrorOrNil()
}
