package order

import (
	"strings"

	"github.com/kashish2310/food-delivery-order-system/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is a single line of an order. It is a value object: two items with
// the same name, quantity and price are interchangeable.
type Item struct {
	name     string
	quantity int
	price    decimal.Decimal
}

// NewItem validates and creates an order line.
// Name must not be blank, quantity must be at least 1 and price at least 0.01.
func NewItem(name string, quantity int, price decimal.Decimal) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsOutOfRangeError("item quantity", quantity, 1, "unbounded")
	}
	if price.LessThan(minAmount) {
		return Item{}, errs.NewValueIsOutOfRangeError("item price", price.String(), minAmount.String(), "unbounded")
	}

	return Item{name: name, quantity: quantity, price: price}, nil
}

// Name returns the item name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i Item) Price() decimal.Decimal {
	return i.price
}

// Subtotal returns price * quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}
