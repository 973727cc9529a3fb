package queue

import (
	"context"
	"time"

	"github.com/kashish2310/food-delivery-order-system/internal/pkg/errs"
)

const DefaultCapacity = 1000

// BoundedQueue is a fixed-capacity FIFO of order identifiers backed by a
// buffered channel. It is safe for concurrent producers and consumers.
type BoundedQueue struct {
	entries chan int64
}

// NewBoundedQueue creates an empty queue holding at most capacity entries.
func NewBoundedQueue(capacity int) (*BoundedQueue, error) {
	if capacity < 1 {
		return nil, errs.NewValueIsOutOfRangeError("queue capacity", capacity, 1, "unbounded")
	}
	return &BoundedQueue{entries: make(chan int64, capacity)}, nil
}

// TryEnqueue appends id and reports true, or reports false immediately when
// the queue is full.
func (q *BoundedQueue) TryEnqueue(id int64) bool {
	select {
	case q.entries <- id:
		return true
	default:
		return false
	}
}

// DequeueWait returns the oldest identifier, waiting up to timeout for one to
// arrive. ok is false when the timeout elapses or ctx is done first.
func (q *BoundedQueue) DequeueWait(ctx context.Context, timeout time.Duration) (int64, bool) {
	select {
	case id := <-q.entries:
		return id, true
	default:
	}

	if timeout <= 0 {
		return 0, false
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case id := <-q.entries:
		return id, true
	case <-timer.C:
		return 0, false
	case <-ctx.Done():
		return 0, false
	}
}

// Len returns the number of identifiers currently waiting.
func (q *BoundedQueue) Len() int {
	return len(q.entries)
}

// Cap returns the fixed capacity.
func (q *BoundedQueue) Cap() int {
	return cap(q.entries)
}
