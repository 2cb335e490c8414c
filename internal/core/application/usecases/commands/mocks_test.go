package commands_test

import (
	"context"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) GetAll(ctx context.Context) ([]*dish.Dish, error) {
	args := m.Called(ctx)
	return dishes(args.Get(0)), args.Error(1)
}

func (m *MockDishRepository) Get(ctx context.Context, id kernel.ID) (*dish.Dish, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*dish.Dish)
	return d, args.Error(1)
}

func (m *MockDishRepository) GetByIDs(ctx context.Context, ids []kernel.ID) ([]*dish.Dish, error) {
	args := m.Called(ctx, ids)
	return dishes(args.Get(0)), args.Error(1)
}

func (m *MockDishRepository) Add(ctx context.Context, d *dish.Dish) (*dish.Dish, error) {
	args := m.Called(ctx, d)
	saved, _ := args.Get(0).(*dish.Dish)
	return saved, args.Error(1)
}

func (m *MockDishRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDishRepository) IsReferenced(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

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

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) AddWithDishes(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	saved, _ := args.Get(0).(*order.Order)
	return saved, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	saved, _ := args.Get(0).(*order.Order)
	return saved, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every unit of work role used by the command handlers.
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

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockDishUoWFactory struct{ mock.Mock }

func (m *MockDishUoWFactory) Create() commands.DishUoW {
	args := m.Called()
	return args.Get(0).(commands.DishUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockMenuInvalidator struct{ mock.Mock }

func (m *MockMenuInvalidator) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func dishes(v any) []*dish.Dish {
	d, _ := v.([]*dish.Dish)
	return d
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

func newOrder(id int64, status order.Status, items ...*dish.Dish) *order.Order {
	o, err := order.RestoreOrder(kernel.MustNewID(id), "Анна", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), status, items)
	if err != nil {
		panic(err)
	}
	return o
}
