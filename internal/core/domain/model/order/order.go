package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kashish2310/food-delivery-order-system/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	MinCustomerNameLength = 2
	MaxCustomerNameLength = 100

	maxAmountIntegerDigits  = 10
	maxAmountFractionDigits = 2
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadyPersisted is returned when an identifier is assigned twice.
	ErrOrderAlreadyPersisted = errors.New("order already has an identifier")

	minAmount = decimal.New(1, -maxAmountFractionDigits)
	maxAmount = decimal.New(1, maxAmountIntegerDigits)
)

// Order is a customer purchase and the aggregate root of the order lifecycle.
//
// Invariants:
//   - customer name is 2..100 characters
//   - at least one item
//   - total amount is positive with at most 10 integer and 2 fraction digits
//   - status changes through the state machine in Status, except for
//     OverrideStatus which is an unguarded administrative escape hatch
//
// The identifier is zero until the order store assigns one.
type Order struct {
	id           int64
	customerName string
	items        []Item
	totalAmount  decimal.Decimal
	orderTime    time.Time
	status       Status
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewOrder creates a Pending order that has not been persisted yet.
//
// Example:
//
//	item, _ := order.NewItem("Margherita", 2, decimal.RequireFromString("8.50"))
//	o, err := order.NewOrder("Ada", []order.Item{item}, decimal.RequireFromString("17.00"), time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(customerName string, items []Item, totalAmount decimal.Decimal, orderTime time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		orderTime:     orderTime,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerName(customerName),
		o.setItems(items),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order read back from the order store.
func RestoreOrder(
	id int64,
	customerName string,
	items []Item,
	totalAmount decimal.Decimal,
	orderTime time.Time,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("order id", id, 1, "unbounded")
	}

	o := &Order{
		id:            id,
		orderTime:     orderTime,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerName(customerName),
		o.setItems(items),
		o.setTotalAmount(totalAmount),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID records the identifier and creation time handed out by the order
// store. It may only be called once, on an order created by NewOrder.
func (o *Order) AssignID(id int64, createdAt time.Time) error {
	if o.id != 0 {
		return ErrOrderAlreadyPersisted
	}
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("order id", id, 1, "unbounded")
	}
	o.id = id
	o.createdAt = createdAt
	o.updatedAt = createdAt
	return nil
}

// Touch records the time of the last persisted change.
func (o *Order) Touch(at time.Time) {
	o.updatedAt = at
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) CustomerName() string {
	return o.customerName
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// StartProcessing moves the order from Pending to Processing.
func (o *Order) StartProcessing() error {
	next, err := o.status.StartProcessing()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// CompleteProcessing moves the order from Processing to Processed.
func (o *Order) CompleteProcessing() error {
	next, err := o.status.CompleteProcessing()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// OverrideStatus sets any valid status from any status. It is the
// administrative escape hatch and bypasses the transition rules.
func (o *Order) OverrideStatus(status Status) error {
	return o.setStatus(status)
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}

	length := utf8.RuneCountInString(name)
	if length < MinCustomerNameLength || length > MaxCustomerNameLength {
		return errs.NewValueIsOutOfRangeError("customer name length", length, MinCustomerNameLength, MaxCustomerNameLength)
	}

	o.customerName = name
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if item.name == "" {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item %d must be created via NewItem", i))
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotalAmount(amount decimal.Decimal) error {
	if amount.LessThan(minAmount) || !amount.LessThan(maxAmount) {
		return errs.NewValueIsOutOfRangeError("total amount", amount.String(), minAmount.String(), "9999999999.99")
	}
	if !amount.Equal(amount.Round(maxAmountFractionDigits)) {
		return errs.NewValueIsInvalidErrorWithCause(
			"total amount",
			fmt.Errorf("%s has more than %d fraction digits", amount.String(), maxAmountFractionDigits),
		)
	}

	o.totalAmount = amount
	return nil
}
