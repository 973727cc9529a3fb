package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/kashish2310/food-delivery-order-system/internal/core/application/usecases/queries"
	"github.com/kashish2310/food-delivery-order-system/internal/core/domain/model/order"
	"github.com/kashish2310/food-delivery-order-system/internal/pkg/errs"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CountStalePendingOrdersQueryHandlerTestSuite struct {
	orderStoreSuite
}

func (s *CountStalePendingOrdersQueryHandlerTestSuite) TestHandle_CountsOnlyOldPendingOrders() {
	old := time.Now().Add(-time.Hour)

	stalePending := s.seed("Ada Lovelace", "5.00", order.Pending)
	s.backdate(stalePending, old)
	oldProcessed := s.seed("Grace Hopper", "5.00", order.Processed)
	s.backdate(oldProcessed, old)
	s.seed("Alan Turing", "5.00", order.Pending)

	query, err := queries.NewCountStalePendingOrdersQuery(time.Now().Add(-5 * time.Minute))
	s.Require().NoError(err)

	count, err := queries.NewCountStalePendingOrdersQueryHandler(s.db).Handle(context.Background(), query)
	s.Require().NoError(err)
	s.Equal(int64(1), count)
}

func (s *CountStalePendingOrdersQueryHandlerTestSuite) TestHandle_NothingStale() {
	s.seed("Ada Lovelace", "5.00", order.Pending)

	query, err := queries.NewCountStalePendingOrdersQuery(time.Now().Add(-5 * time.Minute))
	s.Require().NoError(err)

	count, err := queries.NewCountStalePendingOrdersQueryHandler(s.db).Handle(context.Background(), query)
	s.Require().NoError(err)
	s.Zero(count)
}

func TestCountStalePendingOrdersQueryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CountStalePendingOrdersQueryHandlerTestSuite))
}

func TestNewCountStalePendingOrdersQuery(t *testing.T) {
	_, err := queries.NewCountStalePendingOrdersQuery(time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewCountStalePendingOrdersQueryHandler(nil).Handle(t.Context(), queries.CountStalePendingOrdersQuery{})
	require.ErrorIs(t, err, queries.ErrCountStalePendingOrdersQueryIsNotConstructed)
}
