package cache

import (
	"context"
	"sync"
	"time"
)

const defaultCleanupInterval = time.Minute

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

func (e entry[T]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// InMemoryClient is a process local Client used when no Redis address is
// configured. Values are stored as is, so T should not hold pointers the
// caller mutates later.
type InMemoryClient[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	now     func() time.Time

	done chan struct{}
	once sync.Once
}

func NewInMemoryClient[T any]() *InMemoryClient[T] {
	m := &InMemoryClient[T]{
		entries: map[string]entry[T]{},
		now:     time.Now,
		done:    make(chan struct{}),
	}

	go m.cleanup(defaultCleanupInterval)
	return m
}

func (m *InMemoryClient[T]) Get(ctx context.Context, key string) (result T, err error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || e.expired(m.now()) {
		return result, ErrNotExists
	}

	return e.value, nil
}

// Set stores object; a non positive ttl never expires.
func (m *InMemoryClient[T]) Set(ctx context.Context, key string, object T, ttl time.Duration) error {
	e := entry[T]{value: object}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()

	return nil
}

func (m *InMemoryClient[T]) Del(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()

	return nil
}

func (m *InMemoryClient[T]) GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (T, error) {
	return getOrSet[T](ctx, m, opts)
}

// Len counts the entries that have not expired yet.
func (m *InMemoryClient[T]) Len() int {
	now := m.now()

	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, e := range m.entries {
		if !e.expired(now) {
			n++
		}
	}
	return n
}

func (m *InMemoryClient[T]) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.evictExpired()
		case <-m.done:
			return
		}
	}
}

func (m *InMemoryClient[T]) evictExpired() {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for key, e := range m.entries {
		if e.expired(now) {
			delete(m.entries, key)
		}
	}
}

// Close stops the background cleanup.
func (m *InMemoryClient[T]) Close() {
	m.once.Do(func() { close(m.done) })
}
