package http

import (
	"encoding/json"
	"time"

	"github.com/kashish2310/food-delivery-order-system/internal/core/application/usecases/queries"
	"github.com/kashish2310/food-delivery-order-system/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// NewOrder is the body of POST /api/orders.
type NewOrder struct {
	CustomerName string          `json:"customerName" validate:"required,min=2,max=100"`
	Items        []NewOrderItem  `json:"items" validate:"required,min=1,dive"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

type NewOrderItem struct {
	Name     string          `json:"name" validate:"required"`
	Quantity int             `json:"quantity" validate:"gte=1"`
	Price    decimal.Decimal `json:"price"`
}

// Order is the representation of an order returned by the API. Amounts are
// JSON numbers with two fraction digits.
type Order struct {
	ID           int64        `json:"id"`
	CustomerName string       `json:"customerName"`
	Items        []OrderItem  `json:"items"`
	TotalAmount  json.Number  `json:"totalAmount"`
	OrderTime    time.Time    `json:"orderTime"`
	Status       order.Status `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

type OrderItem struct {
	Name     string      `json:"name"`
	Quantity int         `json:"quantity"`
	Price    json.Number `json:"price"`
}

// OrderPage is the body of GET /api/orders.
type OrderPage struct {
	Content       []Order `json:"content"`
	Page          int     `json:"page"`
	Size          int     `json:"size"`
	TotalElements int64   `json:"totalElements"`
	TotalPages    int     `json:"totalPages"`
}

// OrderStatus is the body of GET /api/orders/:id/status. Timestamp is the
// response time in Unix milliseconds.
type OrderStatus struct {
	OrderID   int64        `json:"orderId"`
	Status    order.Status `json:"status"`
	Timestamp int64        `json:"timestamp"`
}

// QueueStatus is the body of GET /api/queue.
type QueueStatus struct {
	Size      int `json:"size"`
	Capacity  int `json:"capacity"`
	Remaining int `json:"remaining"`
}

func amount(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func orderFromDomain(o *order.Order) Order {
	items := make([]OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItem{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    amount(item.Price()),
		})
	}

	return Order{
		ID:           o.ID(),
		CustomerName: o.CustomerName(),
		Items:        items,
		TotalAmount:  amount(o.TotalAmount()),
		OrderTime:    o.OrderTime(),
		Status:       o.Status(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}

func orderFromResponse(r queries.OrderResponse) Order {
	items := make([]OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    amount(item.Price),
		})
	}

	return Order{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		Items:        items,
		TotalAmount:  amount(r.TotalAmount),
		OrderTime:    r.OrderTime,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
