package commands

import (
	"errors"

	"github.com/kashish2310/food-delivery-order-system/internal/pkg/errs"
	"github.com/kashish2310/food-delivery-order-system/internal/pkg/guard"
)

var (
	ErrProcessOrderCommandIsNotConstructed = errors.New(
		"ProcessOrderCommand must be created via NewProcessOrderCommand constructor",
	)
)

// ProcessOrderCommand asks the pipeline to drive one dequeued order through
// Pending -> Processing -> Processed.
type ProcessOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

func NewProcessOrderCommand(orderID int64) (ProcessOrderCommand, error) {
	if orderID <= 0 {
		return ProcessOrderCommand{}, errs.NewValueIsOutOfRangeError("order id", orderID, 1, "unbounded")
	}

	return ProcessOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ProcessOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderCommandIsNotConstructed)
}

func (c ProcessOrderCommand) OrderID() int64 {
	return c.orderID
}
