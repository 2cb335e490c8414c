package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
)

// CreateOrderCommandHandler places orders. Looking up the dishes, creating the
// order and linking its dishes happen in one transaction, so a failed reference
// check leaves nothing behind.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand("Анна", []int64{1, 2})
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// placed.Status() == order.Processing
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	placer     services.OrderPlacer
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory because the dish catalog and the order store are used together.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		placer:     services.NewOrderPlacer(),
		now:        time.Now,
	}
}

// Handle places the order in its own transaction and returns it with its dishes.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	placed, err := h.HandleIn(ctx, uow, cmd)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

// HandleIn places the order inside a unit of work the caller has already begun.
// The caller commits or rolls back.
func (h CreateOrderCommandHandler) HandleIn(ctx context.Context, uow UoW, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	found, err := uow.DishRepository().GetByIDs(ctx, cmd.DishIDs())
	if err != nil {
		return nil, err
	}

	newOrder, err := h.placer.Place(cmd.CustomerName(), cmd.DishIDs(), found, h.now())
	if err != nil {
		return nil, err
	}

	return uow.OrderRepository().AddWithDishes(ctx, newOrder)
}
