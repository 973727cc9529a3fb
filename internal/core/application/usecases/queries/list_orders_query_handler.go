package queries

import (
	"context"
	"strings"

	"github.com/kashish2310/food-delivery-order-system/internal/core/domain/model/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListOrdersQueryHandler pages through the orders table.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle counts the matching orders and reads the requested page. The id is
// the tie breaker of every sort, so pages are stable.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	filtered := h.db.WithContext(ctx).Table("orders")
	filter := query.Filter()
	if filter.Status != order.Unknown {
		filtered = filtered.Where("status = ?", filter.Status.String())
	}
	if filter.CustomerName != "" {
		filtered = filtered.Where("LOWER(customer_name) LIKE ?", "%"+strings.ToLower(filter.CustomerName)+"%")
	}

	var total int64
	if err := filtered.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	desc := query.SortDirection() == SortDesc
	var rows []orderRow
	err := filtered.Session(&gorm.Session{}).
		Select(orderColumns).
		Order(clause.OrderByColumn{Column: clause.Column{Name: sortColumns[query.SortBy()]}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc}).
		Limit(query.Size()).
		Offset(query.Page() * query.Size()).
		Find(&rows).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		resp, convErr := row.toResponse()
		if convErr != nil {
			return ListOrdersQueryResponse{}, convErr
		}
		orders = append(orders, resp)
	}

	return ListOrdersQueryResponse{
		Orders:        orders,
		Page:          query.Page(),
		Size:          query.Size(),
		TotalElements: total,
		TotalPages:    int((total + int64(query.Size()) - 1) / int64(query.Size())),
	}, nil
}
