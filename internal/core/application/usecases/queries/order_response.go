package queries

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kashish2310/food-delivery-order-system/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderResponse is the read model of one order.
type OrderResponse struct {
	ID           int64
	CustomerName string
	Items        []OrderItemResponse
	TotalAmount  decimal.Decimal
	OrderTime    time.Time
	Status       order.Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderItemResponse is one line of an order as stored in the items column.
type OrderItemResponse struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// orderColumns are the columns of the orders table read by every order query.
const orderColumns = "id, customer_name, items, total_amount, order_time, status, created_at, updated_at"

type orderRow struct {
	ID           int64
	CustomerName string
	Items        string
	TotalAmount  decimal.Decimal
	OrderTime    time.Time
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r orderRow) toResponse() (OrderResponse, error) {
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return OrderResponse{}, fmt.Errorf("order %d: %w", r.ID, err)
	}

	items := make([]OrderItemResponse, 0)
	if err = json.Unmarshal([]byte(r.Items), &items); err != nil {
		return OrderResponse{}, fmt.Errorf("decode items of order %d: %w", r.ID, err)
	}

	return OrderResponse{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		Items:        items,
		TotalAmount:  r.TotalAmount,
		OrderTime:    r.OrderTime,
		Status:       status,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}, nil
}
