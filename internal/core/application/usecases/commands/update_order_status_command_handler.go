package commands

import (
	"context"

	"github.com/kashish2310/food-delivery-order-system/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies administrative status overrides.
// It races freely with the processing pipeline: whichever update commits last
// wins.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory}
}

// Handle returns the updated order, or errs.ObjectNotFoundError when the
// order does not exist.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return withOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.OverrideStatus(cmd.Status())
	})
}
