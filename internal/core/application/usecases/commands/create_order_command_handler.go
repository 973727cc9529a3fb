package commands

import (
	"context"
	"time"

	"github.com/kashish2310/food-delivery-order-system/internal/core/domain/model/order"
	"github.com/kashish2310/food-delivery-order-system/internal/core/ports"
)

// CreateOrderCommandHandler persists new orders in Pending status and then
// submits them to the processing queue.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, producer)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created.ID() is assigned and the order waits in the queue
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	submitter  ports.OrderSubmitter
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, submitter ports.OrderSubmitter) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		submitter:  submitter,
		now:        time.Now,
	}
}

// Handle stores the order and commits before submitting it, so the queue
// only ever sees identifiers of committed orders. A rejected submission does
// not fail the call: the order stays Pending in the store.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := order.NewOrder(cmd.CustomerName(), cmd.Items(), cmd.TotalAmount(), h.now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.submitter.Submit(ctx, created.ID())

	return created, nil
}
