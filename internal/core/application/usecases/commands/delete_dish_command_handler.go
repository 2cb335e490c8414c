package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/pkg/errs"
)

// DeleteDishCommandHandler removes dishes that no order refers to.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectIsReferenced):
//	    // orders still contain the dish
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // nothing to delete
//	}
type DeleteDishCommandHandler struct {
	uowFactory DishUoWFactory
	menu       MenuInvalidator
	logger     *slog.Logger
}

// NewDeleteDishCommandHandler creates a handler for dish deletion.
func NewDeleteDishCommandHandler(
	uowFactory DishUoWFactory,
	menu MenuInvalidator,
	logger *slog.Logger,
) DeleteDishCommandHandler {
	return DeleteDishCommandHandler{
		uowFactory: uowFactory,
		menu:       menu,
		logger:     logger.With("component", "delete_dish"),
	}
}

// Handle deletes the dish. Returns errs.ObjectIsReferencedError when orders
// contain it and errs.ObjectNotFoundError when it does not exist.
func (h DeleteDishCommandHandler) Handle(ctx context.Context, cmd DeleteDishCommand) error {
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

	dishRepo := uow.DishRepository()

	referenced, err := dishRepo.IsReferenced(ctx, cmd.DishID())
	if err != nil {
		return err
	}
	if referenced {
		return errs.NewObjectIsReferencedError("dish", cmd.DishID().Int64())
	}

	deleted, err := dishRepo.Delete(ctx, cmd.DishID())
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NewObjectNotFoundError("dish", cmd.DishID().String())
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.menu.Invalidate(ctx); err != nil {
		h.logger.WarnContext(ctx, "failed to invalidate menu cache", "dish_id", cmd.DishID().Int64(), "error", err)
	}

	return nil
}
