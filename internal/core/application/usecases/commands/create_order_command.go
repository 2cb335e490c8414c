package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer_name")
	ErrDishIDsMustBeUnique    = errors.New("dish ids must be unique")
)

// CreateOrderCommand represents a request to place an order for a customer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Анна", []int64{1, 4, 7})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidReference) {
//	    // some dishes are not on the menu
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName string
	dishIDs      []kernel.ID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
// Validates that the customer name is present and that between order.MinDishes
// and order.MaxDishes positive dish ids are given. Repeated ids are reported
// as an errs.InvalidReferenceError listing them.
func NewCreateOrderCommand(customerName string, dishIDs []int64) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setDishIDs(dishIDs),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns who places the order.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// DishIDs returns the requested dish identifiers in request order.
func (c CreateOrderCommand) DishIDs() []kernel.ID {
	ids := make([]kernel.ID, len(c.dishIDs))
	copy(ids, c.dishIDs)
	return ids
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setDishIDs(raw []int64) error {
	if len(raw) < order.MinDishes || len(raw) > order.MaxDishes {
		return errs.NewValueIsOutOfRangeError("dish_ids", len(raw), order.MinDishes, order.MaxDishes)
	}

	seen := make(map[int64]int, len(raw))
	ids := make([]kernel.ID, 0, len(raw))
	var repeated []any
	for _, value := range raw {
		seen[value]++
		if seen[value] == 2 {
			repeated = append(repeated, value)
		}
		if seen[value] > 1 {
			continue
		}

		id, err := kernel.NewID(value)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	// a repeated id cannot be matched to a distinct catalog dish
	if len(repeated) > 0 {
		return errs.NewInvalidReferenceErrorWithCause("dish_ids", ErrDishIDsMustBeUnique, repeated...)
	}

	c.dishIDs = ids
	return nil
}
