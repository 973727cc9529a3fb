package queries

import (
	"errors"

	"github.com/kashish2310/food-delivery-order-system/internal/pkg/errs"
	"github.com/kashish2310/food-delivery-order-system/internal/pkg/guard"
)

var (
	ErrGetOrderStatusQueryIsNotConstructed = errors.New(
		"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
	)
)

// GetOrderStatusQuery retrieves only the current status of an order.
type GetOrderStatusQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetOrderStatusQuery(orderID int64) (GetOrderStatusQuery, error) {
	if orderID <= 0 {
		return GetOrderStatusQuery{}, errs.NewValueIsOutOfRangeError("order id", orderID, 1, "unbounded")
	}

	return GetOrderStatusQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

func (q GetOrderStatusQuery) OrderID() int64 {
	return q.orderID
}
