package commands

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/kashish2310/food-delivery-order-system/internal/core/domain/model/order"
	"github.com/kashish2310/food-delivery-order-system/internal/pkg/errs"
)

// ProcessingDelays are the durations of the simulated work phases.
type ProcessingDelays struct {
	// WorkMin and WorkMax bound the random phase before Processing.
	WorkMin time.Duration
	WorkMax time.Duration

	// Finalize is the fixed phase between Processing and Processed.
	Finalize time.Duration
}

// DefaultProcessingDelays returns 2s-5s of random work and 2s of finalization.
func DefaultProcessingDelays() ProcessingDelays {
	return ProcessingDelays{
		WorkMin:  2 * time.Second,
		WorkMax:  5 * time.Second,
		Finalize: 2 * time.Second,
	}
}

// Validate rejects negative durations and an inverted random range.
func (d ProcessingDelays) Validate() error {
	if d.WorkMin < 0 || d.WorkMax < 0 || d.Finalize < 0 {
		return errs.NewValueIsInvalidErrorWithCause("processing delays", fmt.Errorf("durations must not be negative: %+v", d))
	}
	if d.WorkMin > d.WorkMax {
		return errs.NewValueIsOutOfRangeError("processing work min", d.WorkMin, 0, d.WorkMax)
	}
	return nil
}

func (d ProcessingDelays) work() time.Duration {
	if d.WorkMax <= d.WorkMin {
		return d.WorkMin
	}
	return d.WorkMin + rand.N(d.WorkMax-d.WorkMin+1)
}

// ProcessOrderCommandHandler runs the processing task of one order:
//
//  1. random work phase
//  2. Pending -> Processing, committed
//  3. fixed finalize phase
//  4. Processing -> Processed, committed
//
// Each transition is its own unit of work, so a failure leaves the order at
// the last committed status. Nothing is retried or rolled back.
type ProcessOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	delays     ProcessingDelays
}

func NewProcessOrderCommandHandler(uowFactory OrderUoWFactory, delays ProcessingDelays) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{
		uowFactory: uowFactory,
		delays:     delays,
	}
}

// Handle blocks for the whole task. Callers that must not wait run it in
// their own goroutine.
func (h *ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := sleepContext(ctx, h.delays.work()); err != nil {
		return err
	}

	if _, err := withOrder(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).StartProcessing); err != nil {
		return fmt.Errorf("start processing order %d: %w", cmd.OrderID(), err)
	}

	if err := sleepContext(ctx, h.delays.Finalize); err != nil {
		return err
	}

	if _, err := withOrder(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).CompleteProcessing); err != nil {
		return fmt.Errorf("complete processing order %d: %w", cmd.OrderID(), err)
	}

	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
