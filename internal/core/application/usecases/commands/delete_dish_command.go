package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrDeleteDishCommandIsNotConstructed = errors.New(
	"DeleteDishCommand must be created via NewDeleteDishCommand constructor",
)

// DeleteDishCommand represents a request to remove a dish from the menu.
type DeleteDishCommand struct {
	dishID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteDishCommand creates a command to delete the dish with the given id.
func NewDeleteDishCommand(dishID int64) (DeleteDishCommand, error) {
	id, err := kernel.NewID(dishID)
	if err != nil {
		return DeleteDishCommand{}, err
	}

	return DeleteDishCommand{dishID: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDishCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDishCommandIsNotConstructed)
}

func (c DeleteDishCommand) DishID() kernel.ID {
	return c.dishID
}
