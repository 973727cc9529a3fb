// Package ports defines the persistence contracts of the order domain.
// These interfaces decouple the application layer from GORM and make the
// command handlers testable with mocks.
package ports

import (
	"context"

	"github.com/kashish2310/food-delivery-order-system/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and assigns its identifier and creation time.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order in a single statement.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id int64) (*order.Order, error)
}
