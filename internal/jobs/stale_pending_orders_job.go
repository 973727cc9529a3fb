package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/kashish2310/food-delivery-order-system/internal/core/application/usecases/queries"
	"github.com/kashish2310/food-delivery-order-system/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const (
	DefaultStalePendingAfter        = 5 * time.Minute
	DefaultStalePendingScanInterval = time.Minute
)

// StalePendingCounter counts Pending orders created before a cutoff.
type StalePendingCounter interface {
	Handle(ctx context.Context, query queries.CountStalePendingOrdersQuery) (int64, error)
}

// StalePendingOrdersJob reports orders that stay Pending for longer than
// olderThan. Orders rejected by a full queue are never processed, and this
// job makes them visible. It does not put them back on the queue.
type StalePendingOrdersJob struct {
	counter   StalePendingCounter
	metrics   *metrics.Metrics
	olderThan time.Duration
	interval  time.Duration
	now       func() time.Time

	cron    *cron.Cron
	chain   cron.Chain
	started atomic.Bool
	logger  *slog.Logger
}

func NewStalePendingOrdersJob(
	counter StalePendingCounter,
	m *metrics.Metrics,
	olderThan time.Duration,
	interval time.Duration,
	logger *slog.Logger,
) *StalePendingOrdersJob {
	if olderThan <= 0 {
		olderThan = DefaultStalePendingAfter
	}
	if interval <= 0 {
		interval = DefaultStalePendingScanInterval
	}

	logger = logger.With("component", "stale_pending_orders_job")
	scheduler, chain := newScheduler(logger)

	return &StalePendingOrdersJob{
		counter:   counter,
		metrics:   m,
		olderThan: olderThan,
		interval:  interval,
		now:       time.Now,
		cron:      scheduler,
		chain:     chain,
		logger:    logger,
	}
}

func (j *StalePendingOrdersJob) Start() error {
	if !j.started.CompareAndSwap(false, true) {
		return errors.New("stale pending orders job already started")
	}

	j.cron.Schedule(fixedInterval(j.interval), j.chain.Then(cron.FuncJob(func() {
		ctx := context.Background()
		if _, err := j.Scan(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stale pending orders scan failed", "error", err)
		}
	})))
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale pending orders job started",
		"interval", j.interval.String(),
		"older_than", j.olderThan.String(),
	)
	return nil
}

// Scan counts the stale orders once and publishes the result.
func (j *StalePendingOrdersJob) Scan(ctx context.Context) (int64, error) {
	query, err := queries.NewCountStalePendingOrdersQuery(j.now().Add(-j.olderThan))
	if err != nil {
		return 0, err
	}

	count, err := j.counter.Handle(ctx, query)
	if err != nil {
		return 0, err
	}

	j.metrics.StalePending.Set(float64(count))
	if count > 0 {
		j.logger.WarnContext(ctx, "Orders are stuck in PENDING and will not be processed",
			"count", count,
			"older_than", j.olderThan.String(),
		)
	}

	return count, nil
}

func (j *StalePendingOrdersJob) Stop(ctx context.Context) error {
	select {
	case <-j.cron.Stop().Done():
		j.logger.InfoContext(ctx, "Stale pending orders job stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for stale pending scan: %w", ctx.Err())
	}
}
