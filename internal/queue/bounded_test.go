package queue_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/kashish2310/food-delivery-order-system/internal/pkg/errs"
	"github.com/kashish2310/food-delivery-order-system/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shortWait = 10 * time.Millisecond

func newQueue(t *testing.T, capacity int) *queue.BoundedQueue {
	t.Helper()

	q, err := queue.NewBoundedQueue(capacity)
	require.NoError(t, err)
	return q
}

func TestNewBoundedQueue_RejectsNonPositiveCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		q, err := queue.NewBoundedQueue(capacity)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Nil(t, q)
	}
}

func TestBoundedQueue_CapacityTwoScenario(t *testing.T) {
	ctx := t.Context()
	q := newQueue(t, 2)

	assert.True(t, q.TryEnqueue(1))
	assert.True(t, q.TryEnqueue(2))
	assert.False(t, q.TryEnqueue(3))

	id, ok := q.DequeueWait(ctx, shortWait)
	require.True(t, ok)
	assert.Equal(t, int64(1), id)

	assert.True(t, q.TryEnqueue(3))

	id, ok = q.DequeueWait(ctx, shortWait)
	require.True(t, ok)
	assert.Equal(t, int64(2), id)

	id, ok = q.DequeueWait(ctx, shortWait)
	require.True(t, ok)
	assert.Equal(t, int64(3), id)
}

func TestBoundedQueue_NeverExceedsCapacity(t *testing.T) {
	q := newQueue(t, queue.DefaultCapacity)

	for i := range queue.DefaultCapacity {
		require.True(t, q.TryEnqueue(int64(i+1)))
	}

	assert.False(t, q.TryEnqueue(queue.DefaultCapacity+1))
	assert.Equal(t, queue.DefaultCapacity, q.Len())
	assert.Equal(t, queue.DefaultCapacity, q.Cap())
}

func TestBoundedQueue_FIFO(t *testing.T) {
	ctx := t.Context()
	q := newQueue(t, 64)
	ids := []int64{42, 7, 19, 3, 100, 8}

	for _, id := range ids {
		require.True(t, q.TryEnqueue(id))
	}

	dequeued := make([]int64, 0, len(ids))
	for range ids {
		id, ok := q.DequeueWait(ctx, shortWait)
		require.True(t, ok)
		dequeued = append(dequeued, id)
	}

	assert.Equal(t, ids, dequeued)
	assert.Zero(t, q.Len())
}

func TestBoundedQueue_FullEnqueueDoesNotBlock(t *testing.T) {
	q := newQueue(t, 1)
	require.True(t, q.TryEnqueue(1))

	start := time.Now()
	accepted := q.TryEnqueue(2)

	assert.False(t, accepted)
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestBoundedQueue_DequeueWait(t *testing.T) {
	t.Run("returns empty after the timeout", func(t *testing.T) {
		q := newQueue(t, 1)

		start := time.Now()
		id, ok := q.DequeueWait(t.Context(), 30*time.Millisecond)

		assert.False(t, ok)
		assert.Zero(t, id)
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("returns immediately with a non-positive timeout", func(t *testing.T) {
		q := newQueue(t, 1)

		_, ok := q.DequeueWait(t.Context(), 0)
		assert.False(t, ok)

		require.True(t, q.TryEnqueue(5))
		id, ok := q.DequeueWait(t.Context(), 0)
		assert.True(t, ok)
		assert.Equal(t, int64(5), id)
	})

	t.Run("wakes up when an entry arrives", func(t *testing.T) {
		q := newQueue(t, 1)

		go func() {
			time.Sleep(20 * time.Millisecond)
			q.TryEnqueue(11)
		}()

		id, ok := q.DequeueWait(t.Context(), time.Second)
		assert.True(t, ok)
		assert.Equal(t, int64(11), id)
	})

	t.Run("gives up when the context is cancelled", func(t *testing.T) {
		q := newQueue(t, 1)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		start := time.Now()
		_, ok := q.DequeueWait(ctx, time.Second)

		assert.False(t, ok)
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})
}

func TestBoundedQueue_ConcurrentProducerConsumer(t *testing.T) {
	const total = 5000
	ctx := t.Context()
	q := newQueue(t, 16)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := int64(1); i <= total; {
			if q.TryEnqueue(i) {
				i++
			}
		}
	}()

	received := make([]int64, 0, total)
	for len(received) < total {
		if id, ok := q.DequeueWait(ctx, time.Second); ok {
			received = append(received, id)
		}
	}
	wg.Wait()

	for i, id := range received {
		require.Equal(t, int64(i+1), id, "entries must leave in enqueue order")
	}
	assert.Zero(t, q.Len())
}
