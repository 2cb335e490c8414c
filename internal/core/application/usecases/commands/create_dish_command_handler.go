package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/dish"
)

// CreateDishCommandHandler adds dishes to the catalog and drops the cached menu
// once the new dish is committed.
type CreateDishCommandHandler struct {
	uowFactory DishUoWFactory
	menu       MenuInvalidator
	logger     *slog.Logger
}

// NewCreateDishCommandHandler creates a handler for dish creation.
func NewCreateDishCommandHandler(
	uowFactory DishUoWFactory,
	menu MenuInvalidator,
	logger *slog.Logger,
) CreateDishCommandHandler {
	return CreateDishCommandHandler{
		uowFactory: uowFactory,
		menu:       menu,
		logger:     logger.With("component", "create_dish"),
	}
}

// Handle validates the dish, stores it and returns it with its assigned id.
// A failed cache invalidation is logged and does not fail the command, since
// the dish is already committed.
func (h CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newDish, err := dish.NewDish(cmd.Name(), cmd.Description(), cmd.Price(), cmd.Category())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	created, err := uow.DishRepository().Add(ctx, newDish)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.menu.Invalidate(ctx); err != nil {
		h.logger.WarnContext(ctx, "failed to invalidate menu cache", "dish_id", created.ID().Int64(), "error", err)
	}

	return created, nil
}
