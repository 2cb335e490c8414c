package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler moves orders through their lifecycle.
// The order row stays locked from the read until commit, so two concurrent
// changes of the same order cannot both pass the transition check.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle changes the status in its own transaction and returns the updated order.
// Returns errs.ObjectNotFoundError for an unknown order and errs.InvalidStateError,
// listing the allowed next statuses, for an illegal transition.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
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

	updated, err := h.HandleIn(ctx, uow, cmd)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}

// HandleIn changes the status inside a unit of work the caller has already begun.
func (h ChangeOrderStatusCommandHandler) HandleIn(
	ctx context.Context,
	uow OrderUoW,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()

	current, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = current.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	return orderRepo.UpdateStatus(ctx, current)
}
