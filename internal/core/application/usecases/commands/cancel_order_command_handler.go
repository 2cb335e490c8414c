package commands

import (
	"context"

	"restaurant/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels orders that are still in processing or
// preparing. A cancelled order is removed together with its dish links.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidState) {
//	    // the kitchen has already finished the order
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the order in its own transaction.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := h.HandleIn(ctx, uow, cmd); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// HandleIn cancels the order inside a unit of work the caller has already begun.
// Returns errs.ObjectNotFoundError for an unknown order and errs.InvalidStateError
// when the order can no longer be cancelled.
func (h CancelOrderCommandHandler) HandleIn(ctx context.Context, uow OrderUoW, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	current, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = current.EnsureCancellable(); err != nil {
		return err
	}

	deleted, err := orderRepo.Delete(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	return nil
}
