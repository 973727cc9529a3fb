package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kashish2310/food-delivery-order-system/internal/core/application/usecases/commands"
	"github.com/kashish2310/food-delivery-order-system/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const (
	DefaultWorkerInterval = time.Second
	DefaultDequeueTimeout = 100 * time.Millisecond
)

// OrderDequeuer is the consumer side of the bounded order queue.
type OrderDequeuer interface {
	DequeueWait(ctx context.Context, timeout time.Duration) (int64, bool)
}

// OrderProcessor runs the processing task of one order.
type OrderProcessor interface {
	Handle(ctx context.Context, cmd commands.ProcessOrderCommand) error
}

// OrderProcessingJob is the single consumer of the order queue. Every
// interval it waits up to DequeueTimeout for one order identifier and hands
// it to a detached processing task, so a cycle never waits for processing.
type OrderProcessingJob struct {
	queue          OrderDequeuer
	processor      OrderProcessor
	metrics        *metrics.Metrics
	interval       time.Duration
	dequeueTimeout time.Duration

	cron    *cron.Cron
	chain   cron.Chain
	started atomic.Bool
	tasks   sync.WaitGroup
	logger  *slog.Logger
}

// NewOrderProcessingJob creates the worker loop. Non-positive durations fall
// back to the defaults. The interval is honoured exactly, including
// sub-second values.
func NewOrderProcessingJob(
	queue OrderDequeuer,
	processor OrderProcessor,
	m *metrics.Metrics,
	interval time.Duration,
	dequeueTimeout time.Duration,
	logger *slog.Logger,
) *OrderProcessingJob {
	if interval <= 0 {
		interval = DefaultWorkerInterval
	}
	if dequeueTimeout <= 0 {
		dequeueTimeout = DefaultDequeueTimeout
	}

	logger = logger.With("component", "order_processing_job")
	scheduler, chain := newScheduler(logger)

	return &OrderProcessingJob{
		queue:          queue,
		processor:      processor,
		metrics:        m,
		interval:       interval,
		dequeueTimeout: dequeueTimeout,
		cron:           scheduler,
		chain:          chain,
		logger:         logger,
	}
}

// Start schedules the worker loop.
func (j *OrderProcessingJob) Start() error {
	if !j.started.CompareAndSwap(false, true) {
		return errors.New("order processing job already started")
	}

	j.cron.Schedule(fixedInterval(j.interval), j.chain.Then(cron.FuncJob(func() {
		j.RunCycle(context.Background())
	})))
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order processing job started",
		"interval", j.interval.String(),
		"dequeue_timeout", j.dequeueTimeout.String(),
	)
	return nil
}

// RunCycle performs one dequeue attempt and reports whether an order was
// dispatched. An empty queue ends the cycle silently.
func (j *OrderProcessingJob) RunCycle(ctx context.Context) bool {
	orderID, ok := j.queue.DequeueWait(ctx, j.dequeueTimeout)
	if !ok {
		return false
	}

	j.metrics.Dispatched.Inc()
	j.logger.InfoContext(ctx, "Processing order from queue", "order_id", orderID)

	taskCtx := context.WithoutCancel(ctx)
	j.tasks.Add(1)
	go func() {
		defer j.tasks.Done()
		j.process(taskCtx, orderID)
	}()

	return true
}

// process is the failure boundary of a task: errors and panics are logged
// and counted here and go no further. Nothing is retried.
func (j *OrderProcessingJob) process(ctx context.Context, orderID int64) {
	started := time.Now()

	defer func() {
		if r := recover(); r != nil {
			j.metrics.Failed.Inc()
			j.logger.ErrorContext(ctx, "Order processing panicked",
				"order_id", orderID,
				"panic", fmt.Sprint(r),
			)
		}
	}()

	cmd, err := commands.NewProcessOrderCommand(orderID)
	if err == nil {
		err = j.processor.Handle(ctx, cmd)
	}

	if err != nil {
		j.metrics.Failed.Inc()
		j.logger.ErrorContext(ctx, "Error processing order",
			"order_id", orderID,
			"error", err,
		)
		return
	}

	j.metrics.Processed.Inc()
	j.metrics.ProcessingDuration.Observe(time.Since(started).Seconds())
	j.logger.InfoContext(ctx, "Order processed successfully",
		"order_id", orderID,
		"duration", time.Since(started).String(),
	)
}

// Stop stops scheduling new cycles and waits for the running cycle and all
// in-flight processing tasks. Tasks are not cancelled; ctx only bounds the
// wait.
func (j *OrderProcessingJob) Stop(ctx context.Context) error {
	cronDone := j.cron.Stop()
	select {
	case <-cronDone.Done():
	case <-ctx.Done():
		return fmt.Errorf("waiting for order processing cycle: %w", ctx.Err())
	}

	tasksDone := make(chan struct{})
	go func() {
		j.tasks.Wait()
		close(tasksDone)
	}()

	select {
	case <-tasksDone:
		j.logger.InfoContext(ctx, "Order processing job stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for in-flight order processing: %w", ctx.Err())
	}
}
