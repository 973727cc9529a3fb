package queries

import (
	"errors"
	"time"

	"github.com/kashish2310/food-delivery-order-system/internal/pkg/errs"
	"github.com/kashish2310/food-delivery-order-system/internal/pkg/guard"
)

var (
	ErrCountStalePendingOrdersQueryIsNotConstructed = errors.New(
		"CountStalePendingOrdersQuery must be created via NewCountStalePendingOrdersQuery constructor",
	)
)

// CountStalePendingOrdersQuery counts orders that are still Pending although
// they were created before a cutoff. Such orders were most likely dropped by
// a full queue and will never be processed.
type CountStalePendingOrdersQuery struct {
	createdBefore time.Time

	guard guard.ConstructorGuard
}

func NewCountStalePendingOrdersQuery(createdBefore time.Time) (CountStalePendingOrdersQuery, error) {
	if createdBefore.IsZero() {
		return CountStalePendingOrdersQuery{}, errs.NewValueIsRequiredError("createdBefore")
	}

	return CountStalePendingOrdersQuery{
		createdBefore: createdBefore.UTC(),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q CountStalePendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountStalePendingOrdersQueryIsNotConstructed)
}

func (q CountStalePendingOrdersQuery) CreatedBefore() time.Time {
	return q.createdBefore
}
