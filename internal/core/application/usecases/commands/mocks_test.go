package commands_test

import (
	"context"
	"sync"
	"time"

	"github.com/kashish2310/food-delivery-order-system/internal/core/application/usecases/commands"
	"github.com/kashish2310/food-delivery-order-system/internal/core/domain/model/order"
	"github.com/kashish2310/food-delivery-order-system/internal/core/ports"
	"github.com/kashish2310/food-delivery-order-system/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderSubmitter struct{ mock.Mock }

func (m *MockOrderSubmitter) Submit(ctx context.Context, orderID int64) bool {
	args := m.Called(ctx, orderID)
	return args.Bool(0)
}

// memoryStore is an in-memory order store that records every committed
// status per order, for multi-step pipeline tests.
type memoryStore struct {
	mu      sync.Mutex
	orders  map[int64]*order.Order
	history map[int64][]order.Status
	failOn  map[order.Status]error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		orders:  make(map[int64]*order.Order),
		history: make(map[int64][]order.Status),
		failOn:  make(map[order.Status]error),
	}
}

func (s *memoryStore) put(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID()] = o
	s.history[o.ID()] = []order.Status{o.Status()}
}

func (s *memoryStore) statuses(id int64) []order.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]order.Status(nil), s.history[id]...)
}

func (s *memoryStore) Create() commands.OrderUoW {
	return &memoryUoW{store: s}
}

type memoryUoW struct {
	store   *memoryStore
	pending []*order.Order
}

func (u *memoryUoW) Begin(context.Context) error { return nil }

func (u *memoryUoW) Commit(context.Context) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	for _, o := range u.pending {
		u.store.orders[o.ID()] = o
		u.store.history[o.ID()] = append(u.store.history[o.ID()], o.Status())
	}
	u.pending = nil
	return nil
}

func (u *memoryUoW) Rollback(context.Context) error {
	u.pending = nil
	return nil
}

func (u *memoryUoW) OrderRepository() ports.OrderRepository { return u }

func (u *memoryUoW) Add(_ context.Context, o *order.Order) error {
	u.pending = append(u.pending, o)
	return nil
}

func (u *memoryUoW) Update(_ context.Context, o *order.Order) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	if err, ok := u.store.failOn[o.Status()]; ok {
		return err
	}
	u.pending = append(u.pending, o)
	return nil
}

func (u *memoryUoW) Get(_ context.Context, id int64) (*order.Order, error) {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	stored, ok := u.store.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	// Hand out a copy, like a row read from the database.
	return order.RestoreOrder(stored.ID(), stored.CustomerName(), stored.Items(), stored.TotalAmount(),
		stored.OrderTime(), stored.Status(), stored.CreatedAt(), stored.UpdatedAt())
}

func restoredOrder(id int64, status order.Status) *order.Order {
	item, err := order.NewItem("Margherita", 1, mustDecimal("9.99"))
	if err != nil {
		panic(err)
	}
	o, err := order.RestoreOrder(id, "Ada Lovelace", []order.Item{item}, mustDecimal("9.99"),
		time.Now(), status, time.Now(), time.Now())
	if err != nil {
		panic(err)
	}
	return o
}
