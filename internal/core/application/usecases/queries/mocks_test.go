package queries_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDishRepository struct {
	ports.DishRepository
	mock.Mock
}

func (m *MockDishRepository) GetAll(ctx context.Context) ([]*dish.Dish, error) {
	args := m.Called(ctx)
	dishes, _ := args.Get(0).([]*dish.Dish)
	return dishes, args.Error(1)
}

type MockOrderRepository struct {
	ports.OrderRepository
	mock.Mock
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DishRepository() ports.DishRepository {
	args := m.Called()
	return args.Get(0).(ports.DishRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderReadUoWFactory struct{ mock.Mock }

func (m *MockOrderReadUoWFactory) Create() queries.OrderReadUoW {
	args := m.Called()
	return args.Get(0).(queries.OrderReadUoW)
}

type MockDishReaderFactory struct{ mock.Mock }

func (m *MockDishReaderFactory) Create() queries.DishReader {
	args := m.Called()
	return args.Get(0).(queries.DishReader)
}

type MockMenuStore struct{ mock.Mock }

func (m *MockMenuStore) Get(ctx context.Context) ([]*dish.Dish, bool, error) {
	args := m.Called(ctx)
	dishes, _ := args.Get(0).([]*dish.Dish)
	return dishes, args.Bool(1), args.Error(2)
}

func (m *MockMenuStore) Generation(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMenuStore) Set(ctx context.Context, generation int64, dishes []*dish.Dish) (bool, error) {
	args := m.Called(ctx, generation, dishes)
	return args.Bool(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newDish(id int64, name string, price float64) *dish.Dish {
	p, err := kernel.NewPrice(price)
	if err != nil {
		panic(err)
	}
	d, err := dish.RestoreDish(kernel.MustNewID(id), name, "", p, "разное")
	if err != nil {
		panic(err)
	}
	return d
}

func newOrder(id int64, customer string, status order.Status, items ...*dish.Dish) *order.Order {
	o, err := order.RestoreOrder(kernel.MustNewID(id), customer, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), status, items)
	if err != nil {
		panic(err)
	}
	return o
}
