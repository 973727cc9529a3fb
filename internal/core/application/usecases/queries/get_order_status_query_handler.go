package queries

import (
	"context"

	"github.com/kashish2310/food-delivery-order-system/internal/core/domain/model/order"
	"github.com/kashish2310/food-delivery-order-system/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle returns the stored status, or errs.ObjectNotFoundError.
func (h GetOrderStatusQueryHandler) Handle(ctx context.Context, query GetOrderStatusQuery) (order.Status, error) {
	if err := query.Validate(); err != nil {
		return order.Unknown, err
	}

	var statuses []string
	err := h.db.WithContext(ctx).
		Table("orders").
		Where("id = ?", query.OrderID()).
		Limit(1).
		Pluck("status", &statuses).Error
	if err != nil {
		return order.Unknown, err
	}

	if len(statuses) == 0 {
		return order.Unknown, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	return order.ParseStatus(statuses[0])
}
