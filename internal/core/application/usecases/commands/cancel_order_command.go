package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a customer's request to withdraw an order
// before the kitchen has finished it.
type CancelOrderCommand struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel the order with the given id.
func NewCancelOrderCommand(orderID int64) (CancelOrderCommand, error) {
	id, err := kernel.NewID(orderID)
	if err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
