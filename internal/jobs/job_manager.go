package jobs

import (
	"context"
	"errors"
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderProcessingJob    *OrderProcessingJob
	stalePendingOrdersJob *StalePendingOrdersJob
}

// NewJobManager creates a job manager for already constructed jobs.
func NewJobManager(
	orderProcessingJob *OrderProcessingJob,
	stalePendingOrdersJob *StalePendingOrdersJob,
) *JobManager {
	return &JobManager{
		orderProcessingJob:    orderProcessingJob,
		stalePendingOrdersJob: stalePendingOrdersJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll(ctx context.Context) error {
	if err := jm.orderProcessingJob.Start(); err != nil {
		return fmt.Errorf("failed to start order processing job: %w", err)
	}

	if err := jm.stalePendingOrdersJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		_ = jm.orderProcessingJob.Stop(ctx)
		return fmt.Errorf("failed to start stale pending orders job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for in-flight order processing,
// bounded by ctx.
func (jm *JobManager) StopAll(ctx context.Context) error {
	return errors.Join(
		jm.stalePendingOrdersJob.Stop(ctx),
		jm.orderProcessingJob.Stop(ctx),
	)
}
