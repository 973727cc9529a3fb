// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderProcessingJob - Runs every second, takes at most one order from the
// queue and starts its processing task in the background
// 2. StalePendingOrdersJob - Runs every minute and reports orders that have
// been PENDING for too long
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(processingJob, staleJob)
//
//	if err := jobManager.StartAll(ctx); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// On shutdown, wait for in-flight processing tasks
//	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//	_ = jobManager.StopAll(shutdownCtx)
//
// # Scheduling
//
// Both jobs run on a fixed interval schedule with sub-second precision and
// skip a run while the previous one is still active, so there is never more than one dequeue
// waiting on the queue.
//
// # Error Handling
//
// - Processing failures and panics are logged and counted, never retried
// - A failed scan is logged and the gauge keeps its previous value
// - Failed job starts will stop any already running jobs
package jobs
