// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kashish2310/food-delivery-order-system/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is indexed for the stale pending scan and the list filter.
type OrderDTO struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	CustomerName string          `gorm:"size:100;not null;index"`
	Items        string          `gorm:"type:text;not null"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	OrderTime    time.Time       `gorm:"not null"`
	Status       string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt    time.Time       `gorm:"not null;index"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one element of the JSON encoded items column.
type ItemDTO struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// FromDomain converts an order domain aggregate to its database representation.
func FromDomain(o *order.Order) (OrderDTO, error) {
	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemDTO{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, fmt.Errorf("encode order items: %w", err)
	}

	return OrderDTO{
		ID:           o.ID(),
		CustomerName: o.CustomerName(),
		Items:        string(raw),
		TotalAmount:  o.TotalAmount(),
		OrderTime:    o.OrderTime(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}, nil
}

// ToDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func ToDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, fmt.Errorf("restore status of order %d: %w", dto.ID, err)
	}

	var raw []ItemDTO
	if err := json.Unmarshal([]byte(dto.Items), &raw); err != nil {
		return nil, fmt.Errorf("decode items of order %d: %w", dto.ID, err)
	}

	items := make([]order.Item, 0, len(raw))
	for _, r := range raw {
		item, err := order.NewItem(r.Name, r.Quantity, r.Price)
		if err != nil {
			return nil, fmt.Errorf("restore items of order %d: %w", dto.ID, err)
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerName,
		items,
		dto.TotalAmount,
		dto.OrderTime,
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
