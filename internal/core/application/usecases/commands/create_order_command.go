package commands

import (
	"errors"
	"fmt"

	"github.com/kashish2310/food-delivery-order-system/internal/core/domain/model/order"
	"github.com/kashish2310/food-delivery-order-system/internal/pkg/errs"
	"github.com/kashish2310/food-delivery-order-system/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderLine is the raw input for one line of a new order.
type OrderLine struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// CreateOrderCommand represents a request to place a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Ada", []OrderLine{
//	    {Name: "Margherita", Quantity: 2, Price: decimal.RequireFromString("8.50")},
//	}, decimal.RequireFromString("17.00"))
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName string
	items        []order.Item
	totalAmount  decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the customer name, every line and the total
// amount, and joins all validation errors into one.
func NewCreateOrderCommand(customerName string, lines []OrderLine, totalAmount decimal.Decimal) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerName: customerName,
		totalAmount:  totalAmount,
		guard:        guard.NewConstructorGuard(),
	}

	if err := cmd.setItems(lines); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Items returns a copy of the validated order lines.
func (c CreateOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c CreateOrderCommand) TotalAmount() decimal.Decimal {
	return c.totalAmount
}

func (c *CreateOrderCommand) setItems(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	items := make([]order.Item, 0, len(lines))
	var lineErrs []error
	for i, line := range lines {
		item, err := order.NewItem(line.Name, line.Quantity, line.Price)
		if err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		items = append(items, item)
	}

	if err := errors.Join(lineErrs...); err != nil {
		return err
	}

	c.items = items
	return nil
}
