package commands_test

import (
	"errors"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand("Анна", []int64{2, 1})
	require.NoError(t, err)

	soup := newDish(1, "Борщ", 350)
	tea := newDish(2, "Чай", 80)
	stored := newOrder(10, order.Processing, soup, tea)

	dishRepo := new(MockDishRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DishRepository").Return(dishRepo).Once(),
		dishRepo.On("GetByIDs", ctx, cmd.DishIDs()).Return([]*dish.Dish{soup, tea}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("AddWithDishes", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.CustomerName() == "Анна" &&
				o.Status() == order.Processing &&
				len(o.Dishes()) == 2 &&
				o.Dishes()[0].IsEqual(tea)
		})).Return(stored, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	placed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, stored, placed)
	dishRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand("Анна", []int64{1})
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	uow.AssertNotCalled(t, "Rollback", ctx)
}

func TestCreateOrderCommandHandler_Handle_MissingDishesWriteNothing(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand("Анна", []int64{1, 8, 9})
	require.NoError(t, err)

	dishRepo := new(MockDishRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DishRepository").Return(dishRepo).Once(),
		dishRepo.On("GetByIDs", ctx, mock.Anything).Return([]*dish.Dish{newDish(1, "Борщ", 350)}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidReference)
	var refErr *errs.InvalidReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, []any{int64(8), int64(9)}, refErr.Missing)
	orderRepo.AssertNotCalled(t, "AddWithDishes", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand("Анна", []int64{1})
	require.NoError(t, err)

	dishRepo := new(MockDishRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DishRepository").Return(dishRepo).Once(),
		dishRepo.On("GetByIDs", ctx, mock.Anything).Return([]*dish.Dish{newDish(1, "Борщ", 350)}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("AddWithDishes", ctx, mock.AnythingOfType("*order.Order")).Return(nil, errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "add error")
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand("Анна", []int64{1})
	require.NoError(t, err)

	dishRepo := new(MockDishRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DishRepository").Return(dishRepo).Once(),
		dishRepo.On("GetByIDs", ctx, mock.Anything).Return([]*dish.Dish{newDish(1, "Борщ", 350)}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("AddWithDishes", ctx, mock.Anything).Return(newOrder(3, order.Processing, newDish(1, "Борщ", 350)), nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	placed, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	assert.Nil(t, placed)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_HandleIn_UsesCallerUnitOfWork(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand("Анна", []int64{1})
	require.NoError(t, err)
	soup := newDish(1, "Борщ", 350)
	stored := newOrder(4, order.Processing, soup)

	dishRepo := new(MockDishRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("DishRepository").Return(dishRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	dishRepo.On("GetByIDs", ctx, []kernel.ID{kernel.MustNewID(1)}).Return([]*dish.Dish{soup}, nil).Once()
	orderRepo.On("AddWithDishes", ctx, mock.Anything).Return(stored, nil).Once()

	factory := new(MockUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	placed, err := h.HandleIn(ctx, uow, cmd)

	require.NoError(t, err)
	assert.Same(t, stored, placed)
	factory.AssertNotCalled(t, "Create")
	uow.AssertNotCalled(t, "Begin", mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertNotCalled(t, "Rollback", mock.Anything)
}
