package jobs_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/kashish2310/food-delivery-order-system/internal/core/application/usecases/commands"
	"github.com/kashish2310/food-delivery-order-system/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// funcProcessor adapts a function to OrderProcessor and records the ids it
// was called with.
type funcProcessor struct {
	mu     sync.Mutex
	called []int64
	fn     func(ctx context.Context, orderID int64) error
}

func (p *funcProcessor) Handle(ctx context.Context, cmd commands.ProcessOrderCommand) error {
	p.mu.Lock()
	p.called = append(p.called, cmd.OrderID())
	p.mu.Unlock()
	return p.fn(ctx, cmd.OrderID())
}

func (p *funcProcessor) calls() []int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]int64(nil), p.called...)
}

type MockStalePendingCounter struct{ mock.Mock }

func (m *MockStalePendingCounter) Handle(ctx context.Context, query queries.CountStalePendingOrdersQuery) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

// recordingDequeuer never returns an order and records when it was polled.
type recordingDequeuer struct {
	mu    sync.Mutex
	polls []time.Time
}

func (d *recordingDequeuer) DequeueWait(context.Context, time.Duration) (int64, bool) {
	d.mu.Lock()
	d.polls = append(d.polls, time.Now())
	d.mu.Unlock()
	return 0, false
}

func (d *recordingDequeuer) gaps() []time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()

	gaps := make([]time.Duration, 0, len(d.polls))
	for i := 1; i < len(d.polls); i++ {
		gaps = append(gaps, d.polls[i].Sub(d.polls[i-1]))
	}
	return gaps
}
