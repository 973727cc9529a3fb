package queries

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/kashish2310/food-delivery-order-system/internal/core/domain/model/order"
	"github.com/kashish2310/food-delivery-order-system/internal/pkg/errs"
	"github.com/kashish2310/food-delivery-order-system/internal/pkg/guard"
)

const (
	DefaultPageSize      = 10
	MaxPageSize          = 100
	// MaxPage keeps page*size within int for any accepted size.
	MaxPage              = math.MaxInt / MaxPageSize
	DefaultSortBy        = "createdAt"
	DefaultSortDirection = SortDesc
)

type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)

	// sortColumns maps the sort keys accepted from clients to columns.
	sortColumns = map[string]string{
		"id":           "id",
		"customerName": "customer_name",
		"totalAmount":  "total_amount",
		"orderTime":    "order_time",
		"status":       "status",
		"createdAt":    "created_at",
		"updatedAt":    "updated_at",
	}
)

// ListOrdersFilter narrows a listing. Zero values mean no filter.
type ListOrdersFilter struct {
	Status       order.Status
	CustomerName string
}

// ListOrdersQuery requests one page of orders.
//
// Example:
//
//	query, err := NewListOrdersQuery(0, 20, "totalAmount", "asc", ListOrdersFilter{Status: order.Pending})
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	page          int
	size          int
	sortBy        string
	sortDirection SortDirection
	filter        ListOrdersFilter

	guard guard.ConstructorGuard
}

// NewListOrdersQuery applies defaults to an empty sort key, direction or a
// zero size, and caps size at MaxPageSize.
func NewListOrdersQuery(page, size int, sortBy, sortDirection string, filter ListOrdersFilter) (ListOrdersQuery, error) {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setPage(page),
		q.setSize(size),
		q.setSortBy(sortBy),
		q.setSortDirection(sortDirection),
		q.setFilter(filter),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Page() int {
	return q.page
}

func (q ListOrdersQuery) Size() int {
	return q.size
}

// SortBy returns the client facing sort key, for example "createdAt".
func (q ListOrdersQuery) SortBy() string {
	return q.sortBy
}

func (q ListOrdersQuery) SortDirection() SortDirection {
	return q.sortDirection
}

func (q ListOrdersQuery) Filter() ListOrdersFilter {
	return q.filter
}

func (q *ListOrdersQuery) setPage(page int) error {
	if page < 0 || page > MaxPage {
		return errs.NewValueIsOutOfRangeError("page", page, 0, MaxPage)
	}
	q.page = page
	return nil
}

func (q *ListOrdersQuery) setSize(size int) error {
	switch {
	case size == 0:
		q.size = DefaultPageSize
	case size < 0:
		return errs.NewValueIsOutOfRangeError("size", size, 1, MaxPageSize)
	default:
		q.size = min(size, MaxPageSize)
	}
	return nil
}

func (q *ListOrdersQuery) setSortBy(sortBy string) error {
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	if _, ok := sortColumns[sortBy]; !ok {
		keys := make([]string, 0, len(sortColumns))
		for k := range sortColumns {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		return errs.NewValueIsInvalidErrorWithCause("sortBy",
			fmt.Errorf("%q is not one of %s", sortBy, strings.Join(keys, ", ")))
	}
	q.sortBy = sortBy
	return nil
}

func (q *ListOrdersQuery) setSortDirection(direction string) error {
	switch strings.ToUpper(strings.TrimSpace(direction)) {
	case "":
		q.sortDirection = DefaultSortDirection
	case string(SortAsc):
		q.sortDirection = SortAsc
	case string(SortDesc):
		q.sortDirection = SortDesc
	default:
		return errs.NewValueIsInvalidErrorWithCause("sortDirection",
			fmt.Errorf("%q is neither ASC nor DESC", direction))
	}
	return nil
}

func (q *ListOrdersQuery) setFilter(filter ListOrdersFilter) error {
	if filter.Status != order.Unknown {
		if err := filter.Status.Validate(); err != nil {
			return err
		}
	}
	filter.CustomerName = strings.TrimSpace(filter.CustomerName)
	q.filter = filter
	return nil
}

// ListOrdersQueryResponse is one page of orders.
type ListOrdersQueryResponse struct {
	Orders        []OrderResponse
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}
