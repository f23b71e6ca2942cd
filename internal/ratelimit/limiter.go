package ratelimit

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

var ErrQueueFull = errors.New("rate_limit_queue_full")

// QueueFullError reports that the waiter queue is at capacity. RetryAfter is
// the suggested delay before the caller tries again.
type QueueFullError struct {
	RetryAfter time.Duration
}

func (e *QueueFullError) Error() string {
	return ErrQueueFull.Error()
}

func (e *QueueFullError) Unwrap() error {
	return ErrQueueFull
}

// Status is a point-in-time snapshot for observability and tests.
type Status struct {
	Tokens  int
	Waiting int
}

// Limiter is a token bucket: bursts up to Capacity pass immediately,
// sustained load is throttled to RefillPerSec ops/sec. Callers that find the
// bucket empty wait one refill interval and retry; arrival order among
// waiters is not preserved.
type Limiter struct {
	clk          clock.Clock
	capacity     float64
	refillPerSec float64
	maxWaiting   int

	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
	waiting    int
}

func New(capacity, refillPerSec float64, maxWaiting int) *Limiter {
	return NewWithClock(capacity, refillPerSec, maxWaiting, clock.New())
}

func NewWithClock(capacity, refillPerSec float64, maxWaiting int, clk clock.Clock) *Limiter {
	if capacity < 1 {
		capacity = 1
	}
	if refillPerSec <= 0 {
		refillPerSec = 1
	}
	if maxWaiting < 0 {
		maxWaiting = 0
	}
	return &Limiter{
		clk:          clk,
		capacity:     capacity,
		refillPerSec: refillPerSec,
		maxWaiting:   maxWaiting,
		tokens:       capacity,
		lastRefill:   clk.Now(),
	}
}

// Acquire consumes one token, suspending the caller while the bucket is
// empty. It fails with a QueueFullError when the waiter queue is already at
// its maximum, and with the context error when ctx ends during a wait.
func (l *Limiter) Acquire(ctx context.Context) error {
	for {
		l.mu.Lock()
		l.refillLocked()
		if l.tokens >= 1 {
			l.tokens--
			l.mu.Unlock()
			return nil
		}
		if l.waiting >= l.maxWaiting {
			l.mu.Unlock()
			return &QueueFullError{RetryAfter: l.retryInterval()}
		}
		l.waiting++
		l.mu.Unlock()

		err := l.wait(ctx, l.retryInterval())

		l.mu.Lock()
		l.waiting--
		l.mu.Unlock()
		if err != nil {
			return err
		}
	}
}

// Status refills first so the reported token count reflects elapsed time.
func (l *Limiter) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refillLocked()
	return Status{
		Tokens:  int(math.Floor(l.tokens)),
		Waiting: l.waiting,
	}
}

func (l *Limiter) refillLocked() {
	now := l.clk.Now()
	elapsed := now.Sub(l.lastRefill).Seconds()
	if elapsed > 0 {
		l.tokens = math.Min(l.capacity, l.tokens+elapsed*l.refillPerSec)
	}
	l.lastRefill = now
}

func (l *Limiter) retryInterval() time.Duration {
	ms := math.Ceil(1000 / l.refillPerSec)
	return time.Duration(ms) * time.Millisecond
}

func (l *Limiter) wait(ctx context.Context, d time.Duration) error {
	timer := l.clk.Timer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
