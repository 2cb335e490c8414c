package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCreateDishCommandIsNotConstructed = errors.New(
	"CreateDishCommand must be created via NewCreateDishCommand constructor",
)

// CreateDishCommand represents a request to add a dish to the menu.
//
// Example:
//
//	cmd, err := NewCreateDishCommand("Борщ", "со сметаной", 350, "супы")
//	if err != nil {
//	    return fmt.Errorf("invalid dish data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateDishCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	price       kernel.Price
	category    string

	guard guard.ConstructorGuard
}

// NewCreateDishCommand creates a command to add a dish. The price is checked here;
// the remaining fields are checked by the dish aggregate itself.
func NewCreateDishCommand(name, description string, price float64, category string) (CreateDishCommand, error) {
	cmd := CreateDishCommand{
		name:        name,
		description: description,
		category:    category,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setPrice(price); err != nil {
		return CreateDishCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDishCommandIsNotConstructed if validation fails.
func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

func (c CreateDishCommand) Name() string {
	return c.name
}

func (c CreateDishCommand) Description() string {
	return c.description
}

func (c CreateDishCommand) Price() kernel.Price {
	return c.price
}

func (c CreateDishCommand) Category() string {
	return c.category
}

func (c *CreateDishCommand) setPrice(amount float64) error {
	price, err := kernel.NewPrice(amount)
	if err != nil {
		return err
	}

	c.price = price
	return nil
}
