package queries

import (
	"context"

	"github.com/kashish2310/food-delivery-order-system/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type CountStalePendingOrdersQueryHandler struct {
	db *gorm.DB
}

func NewCountStalePendingOrdersQueryHandler(db *gorm.DB) CountStalePendingOrdersQueryHandler {
	return CountStalePendingOrdersQueryHandler{db: db}
}

func (h CountStalePendingOrdersQueryHandler) Handle(ctx context.Context, query CountStalePendingOrdersQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).
		Table("orders").
		Where("status = ? AND created_at < ?", order.Pending.String(), query.CreatedBefore()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
