package queries_test

import (
	"context"
	"time"

	"github.com/kashish2310/food-delivery-order-system/internal/adapters/out/postgres/orderrepo"
	"github.com/kashish2310/food-delivery-order-system/internal/core/domain/model/order"
	"github.com/kashish2310/food-delivery-order-system/internal/pkg/testdb"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// orderStoreSuite seeds a fresh in-memory orders table for every test.
type orderStoreSuite struct {
	suite.Suite
	db   *gorm.DB
	repo *orderrepo.GormOrderRepository
}

func (s *orderStoreSuite) SetupTest() {
	s.db = testdb.OpenSQLite(s.T())
	s.repo = orderrepo.NewGormOrderRepository(s.db)
}

func (s *orderStoreSuite) seed(customerName, amount string, status order.Status) *order.Order {
	item, err := order.NewItem("Burrito", 1, decimal.RequireFromString(amount))
	s.Require().NoError(err)

	o, err := order.NewOrder(customerName, []order.Item{item}, decimal.RequireFromString(amount), time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Add(context.Background(), o))

	if status != order.Pending {
		s.Require().NoError(o.OverrideStatus(status))
		s.Require().NoError(s.repo.Update(context.Background(), o))
	}
	return o
}

func (s *orderStoreSuite) backdate(o *order.Order, createdAt time.Time) {
	err := s.db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", o.ID()).
		Update("created_at", createdAt.UTC()).Error
	s.Require().NoError(err)
}
