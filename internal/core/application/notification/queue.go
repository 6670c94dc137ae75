// Package notification implements the toast queue every portal component reports
// outcomes through. Delivery is best effort: a toast may expire before anyone reads it.
package notification

import (
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"logistics/internal/core/domain/model/toast"
	"logistics/internal/metrics"
)

// DefaultTTL is how long a toast lives unless told otherwise.
const DefaultTTL = 4 * time.Second

// Queue is an ordered, time-decaying list of toasts. Ids come from a monotonic counter
// so toasts created within the same instant stay distinct. It is safe for concurrent use.
type Queue struct {
	nextID atomic.Uint64

	mu     sync.Mutex
	toasts []toast.Toast

	defaultTTL time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

// Option configures a Queue.
type Option func(*Queue)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) {
		q.now = now
	}
}

// WithLogger sets the queue's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(q *Queue) {
		q.logger = logger.With("component", "notification_queue")
	}
}

// NewQueue creates an empty queue. A non-positive defaultTTL falls back to DefaultTTL.
func NewQueue(defaultTTL time.Duration, opts ...Option) *Queue {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	q := &Queue{
		defaultTTL: defaultTTL,
		now:        time.Now,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Notify enqueues a toast with the default TTL.
func (q *Queue) Notify(kind toast.Kind, message string) toast.Toast {
	return q.NotifyWithTTL(kind, message, q.defaultTTL)
}

// NotifyWithTTL enqueues a toast that expires after ttl. A zero ttl makes it sticky.
// Unknown kinds are reported as info.
func (q *Queue) NotifyWithTTL(kind toast.Kind, message string, ttl time.Duration) toast.Toast {
	if err := kind.Validate(); err != nil {
		q.logger.Warn("unknown toast kind", "kind", string(kind), "error", err)
		kind = toast.Info
	}
	if ttl < 0 {
		ttl = 0
	}

	t := toast.Toast{
		ID:        toast.ID(q.nextID.Add(1)),
		Kind:      kind,
		Message:   message,
		TTL:       ttl,
		CreatedAt: q.now(),
	}

	q.mu.Lock()
	q.toasts = append(q.toasts, t)
	// Ids are taken outside the lock, so concurrent appends may land out of order.
	if n := len(q.toasts); n > 1 && q.toasts[n-2].ID > t.ID {
		sort.Slice(q.toasts, func(i, j int) bool { return q.toasts[i].ID < q.toasts[j].ID })
	}
	q.mu.Unlock()

	metrics.ToastsEnqueuedTotal.WithLabelValues(string(kind)).Inc()
	q.logger.Debug("toast enqueued", "id", t.ID, "kind", string(kind))

	return t
}

// Remove dismisses a toast. It reports whether the toast was still queued.
func (q *Queue) Remove(id toast.ID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the live toasts ordered by id. Expired ones are hidden even if the
// eviction job has not run yet.
func (q *Queue) List() []toast.Toast {
	now := q.now()

	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]toast.Toast, 0, len(q.toasts))
	for _, t := range q.toasts {
		if !t.IsExpired(now) {
			out = append(out, t)
		}
	}
	return out
}

// Evict drops expired toasts and returns how many were removed.
func (q *Queue) Evict() int {
	now := q.now()

	q.mu.Lock()
	kept := q.toasts[:0]
	for _, t := range q.toasts {
		if !t.IsExpired(now) {
			kept = append(kept, t)
		}
	}
	evicted := len(q.toasts) - len(kept)
	for i := len(kept); i < len(q.toasts); i++ {
		q.toasts[i] = toast.Toast{}
	}
	q.toasts = kept
	q.mu.Unlock()

	if evicted > 0 {
		metrics.ToastsEvictedTotal.Add(float64(evicted))
	}
	return evicted
}

// Len returns the number of queued toasts, expired or not.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.toasts)
}
