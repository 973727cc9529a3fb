package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "github.com/kashish2310/food-delivery-order-system/internal/adapters/out/postgres"
	"github.com/kashish2310/food-delivery-order-system/internal/adapters/out/postgres/orderrepo"
	"github.com/kashish2310/food-delivery-order-system/internal/core/domain/model/order"
	"github.com/kashish2310/food-delivery-order-system/internal/core/ports"
	"github.com/kashish2310/food-delivery-order-system/internal/pkg/errs"
	"github.com/kashish2310/food-delivery-order-system/internal/pkg/testdb"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UnitOfWorkTestSuite exercises the GORM unit of work against an
// in-memory database.
type UnitOfWorkTestSuite struct {
	suite.Suite
	db      *gorm.DB
	factory ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	suite.db = testdb.OpenSQLite(suite.T())
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWorkFactory_CreateReturnsFreshInstances() {
	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.NotNil(first)
	suite.NotSame(first, second)
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWork_CommitPersists() {
	ctx := context.Background()
	o := createTestOrder(suite.T())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertOrderCount(1)

	got, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, got.Status())
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWork_RollbackDiscards() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, createTestOrder(suite.T())))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertOrderCount(0)
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWork_RollbackAfterCommitIsNoop() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, createTestOrder(suite.T())))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertOrderCount(1)
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWork_CommitWithoutBegin() {
	err := suite.factory.Create().Commit(context.Background())

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWork_BeginTwiceKeepsTransaction() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, createTestOrder(suite.T())))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertOrderCount(0)
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWork_StatusUpdateInTransaction() {
	ctx := context.Background()
	o := createTestOrder(suite.T())
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.StartProcessing())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	got, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, got.Status())
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()

	_, err := suite.factory.Create().OrderRepository().Get(ctx, 1)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func createTestOrder(tb testing.TB) *order.Order {
	tb.Helper()

	item, err := order.NewItem("Pad Thai", 1, decimal.RequireFromString("11.90"))
	if err != nil {
		tb.Fatal(err)
	}
	o, err := order.NewOrder("Ada Lovelace", []order.Item{item}, decimal.RequireFromString("11.90"), time.Now())
	if err != nil {
		tb.Fatal(err)
	}
	return o
}

func TestUnitOfWorkSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
