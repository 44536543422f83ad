package apt

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/seagrayinc/goapt/internal/metrics"
)

// Correlator matches inbound replies to outstanding requests by message id.
//
// The protocol carries no request sequence number, so only one request per reply id
// can be outstanding at a time. A second Register for the same id fails with
// CorrelationConflictError until the first is resolved or evicted.
type Correlator[M Message] struct {
	// MaxAge bounds how long an entry may stay registered. Zero disables Expire.
	MaxAge time.Duration

	mu      sync.Mutex
	pending map[uint16]*Reply[M]
	failed  error
}

// NewCorrelator returns a correlator whose entries expire after maxAge.
func NewCorrelator[M Message](maxAge time.Duration) *Correlator[M] {
	return &Correlator[M]{
		MaxAge:  maxAge,
		pending: make(map[uint16]*Reply[M]),
	}
}

// Reply is the caller's handle on one registered request.
type Reply[M Message] struct {
	id         uint16
	registered time.Time
	owner      *Correlator[M]

	done      chan struct{}
	completed atomic.Bool
	msg       M
	err       error
}

// ID returns the message id this reply waits for.
func (r *Reply[M]) ID() uint16 {
	return r.id
}

// Done is closed once the reply is completed.
func (r *Reply[M]) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the reply arrives. If ctx carries a deadline and it passes
// first, the entry is evicted and ErrTimedOut returned; a late reply is then
// discarded. If ctx is cancelled without a deadline, Wait returns ctx.Err() and the
// entry stays registered until resolved or expired.
func (r *Reply[M]) Wait(ctx context.Context) (M, error) {
	select {
	case <-r.done:
		return r.msg, r.err
	case <-ctx.Done():
		if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			var zero M
			return zero, ctx.Err()
		}
		r.owner.evict(r, ErrTimedOut)
		<-r.done
		return r.msg, r.err
	}
}

func (r *Reply[M]) complete(msg M, err error) {
	if !r.completed.CompareAndSwap(false, true) {
		panic("apt: reply completed twice")
	}
	r.msg = msg
	r.err = err
	close(r.done)
}

// Register reserves the reply slot for id.
func (c *Correlator[M]) Register(id uint16) (*Reply[M], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.failed != nil {
		return nil, c.failed
	}
	if _, ok := c.pending[id]; ok {
		return nil, &CorrelationConflictError{ID: id}
	}
	if c.pending == nil {
		c.pending = make(map[uint16]*Reply[M])
	}

	r := &Reply[M]{
		id:         id,
		registered: time.Now(),
		owner:      c,
		done:       make(chan struct{}),
	}
	c.pending[id] = r
	metrics.SetPendingRequests(len(c.pending))
	return r, nil
}

// Resolve completes the entry waiting for id with msg and removes it. It returns
// false, and changes nothing, when no entry is waiting.
func (c *Correlator[M]) Resolve(id uint16, msg M) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.pending[id]
	if !ok {
		return false
	}
	delete(c.pending, id)
	r.complete(msg, nil)
	metrics.RecordCorrelation(metrics.OutcomeResolved)
	metrics.SetPendingRequests(len(c.pending))
	return true
}

// Cancel removes r without completing it successfully, e.g. after the request frame
// could not be written. The reply completes with err.
func (c *Correlator[M]) Cancel(r *Reply[M], err error) {
	c.evict(r, err)
}

// Expire evicts every entry registered before now-MaxAge and returns how many were
// evicted. Their replies complete with ErrTimedOut.
func (c *Correlator[M]) Expire(now time.Time) int {
	if c.MaxAge <= 0 {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var n int
	for id, r := range c.pending {
		if now.Sub(r.registered) < c.MaxAge {
			continue
		}
		delete(c.pending, id)
		r.complete(*new(M), ErrTimedOut)
		metrics.RecordCorrelation(metrics.OutcomeTimedOut)
		n++
	}
	metrics.SetPendingRequests(len(c.pending))
	return n
}

// Fail completes every pending entry with a TransportError wrapping err. Later
// registrations fail with the same error.
func (c *Correlator[M]) Fail(err error) {
	terr := &TransportError{Err: err}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.failed == nil {
		c.failed = terr
	}
	for id, r := range c.pending {
		delete(c.pending, id)
		r.complete(*new(M), terr)
		metrics.RecordCorrelation(metrics.OutcomeFailed)
	}
	metrics.SetPendingRequests(0)
}

// Pending returns the number of outstanding entries.
func (c *Correlator[M]) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// evict removes r if it is still the entry registered for its id.
func (c *Correlator[M]) evict(r *Reply[M], err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cur, ok := c.pending[r.id]; !ok || cur != r {
		return false
	}
	delete(c.pending, r.id)
	r.complete(*new(M), err)
	if errors.Is(err, ErrTimedOut) {
		metrics.RecordCorrelation(metrics.OutcomeTimedOut)
	} else {
		metrics.RecordCorrelation(metrics.OutcomeCancelled)
	}
	metrics.SetPendingRequests(len(c.pending))
	return true
}
