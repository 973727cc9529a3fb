package queue

import (
	"context"
	"log/slog"

	"github.com/kashish2310/food-delivery-order-system/internal/pkg/metrics"
)

type enqueuer interface {
	TryEnqueue(id int64) bool
	Len() int
	Cap() int
}

// Producer submits newly created orders to the bounded queue.
type Producer struct {
	queue   enqueuer
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewProducer(queue enqueuer, m *metrics.Metrics, logger *slog.Logger) *Producer {
	return &Producer{
		queue:   queue,
		metrics: m,
		logger:  logger.With("component", "order_queue_producer"),
	}
}

// Submit enqueues orderID without blocking. A full queue is logged and counted
// and reported as false; it is never an error for the caller.
func (p *Producer) Submit(ctx context.Context, orderID int64) bool {
	if !p.queue.TryEnqueue(orderID) {
		p.metrics.Rejected.Inc()
		p.logger.ErrorContext(ctx, "Failed to add order to queue, queue is full",
			"order_id", orderID,
			"capacity", p.queue.Cap(),
		)
		return false
	}

	p.metrics.Enqueued.Inc()
	p.logger.InfoContext(ctx, "Order added to queue for processing",
		"order_id", orderID,
		"queue_size", p.queue.Len(),
	)
	return true
}
