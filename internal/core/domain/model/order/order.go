package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

const (
	// MaxCustomerNameLength is the maximum number of characters in a customer name.
	MaxCustomerNameLength = 100
	// MinDishes is the minimum number of dishes in an order.
	MinDishes = 1
	// MaxDishes is the maximum number of dishes in an order.
	MaxDishes = 50
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrCustomerNameIsRequired is returned when an order has no customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer_name")
	// ErrOrderTimeIsRequired is returned when an order has no creation time.
	ErrOrderTimeIsRequired = errs.NewValueIsRequiredError("order_time")
	// ErrOrderCannotBeCancelled is the cause attached when cancelling an order the kitchen has finished.
	ErrOrderCannotBeCancelled = errors.New("only orders in processing or preparing can be cancelled")
)

// Order represents a customer order composed of dishes from the catalog. It is the
// aggregate root that manages the order lifecycle from placement to completion.
//
// Order follows these invariants:
//   - Customer name is required and at most MaxCustomerNameLength characters
//   - It holds between MinDishes and MaxDishes distinct, persisted dishes
//   - The dish set is fixed at creation
//   - Order time is assigned once, in UTC
//   - Status changes follow the Status state machine
//
// A new order carries the zero kernel.ID until storage assigns one.
type Order struct {
	// id is the storage-assigned identifier (zero before the first save)
	id kernel.ID

	// customerName is who placed the order
	customerName string

	// orderTime is when the order was placed
	orderTime time.Time

	// status represents the current state in the order lifecycle
	status Status

	// dishes are the catalog items the order consists of
	dishes []*dish.Dish

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order in Processing status. This is the only way to place a
// new order, ensuring all business invariants are maintained.
//
// Parameters:
//   - customerName: who placed the order (trimmed, required)
//   - dishes: persisted catalog dishes, without duplicates
//   - orderTime: when the order was placed; stored in UTC
//
// Example:
//
//	dishes, _ := uow.DishRepository().GetByIDs(ctx, ids)
//	o, err := order.NewOrder("Анна", dishes, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(customerName string, dishes []*dish.Dish, orderTime time.Time) (*Order, error) {
	o := &Order{
		status:        Processing,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerName(customerName),
		o.setDishes(dishes),
		o.setOrderTime(orderTime),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order, including its current status.
// It is used by repositories when mapping rows back to the domain.
func RestoreOrder(
	id kernel.ID,
	customerName string,
	orderTime time.Time,
	status Status,
	dishes []*dish.Dish,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		o.setCustomerName(customerName),
		o.setDishes(dishes),
		o.setOrderTime(orderTime),
	); err != nil {
		return nil, err
	}

	o.id = id
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two persisted orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && !o.id.IsZero() && o.id.IsEqual(other.id)
}

// ID returns the order's identifier, zero if the order has not been saved.
func (o *Order) ID() kernel.ID {
	return o.id
}

// CustomerName returns who placed the order.
func (o *Order) CustomerName() string {
	return o.customerName
}

// OrderTime returns when the order was placed, in UTC.
func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Dishes returns a copy of the order's dish list.
func (o *Order) Dishes() []*dish.Dish {
	result := make([]*dish.Dish, len(o.dishes))
	copy(result, o.dishes)
	return result
}

// DishIDs returns the identifiers of the order's dishes.
func (o *Order) DishIDs() []kernel.ID {
	ids := make([]kernel.ID, 0, len(o.dishes))
	for _, d := range o.dishes {
		ids = append(ids, d.ID())
	}
	return ids
}

// Total returns the sum of the dish prices.
func (o *Order) Total() float64 {
	var cents int64
	for _, d := range o.dishes {
		cents += int64(math.Round(d.Price().Amount() * 100))
	}
	return float64(cents) / 100
}

// ChangeStatus moves the order to target following the Status state machine.
//
// Returns:
//   - nil on a legal transition
//   - errs.InvalidStateError carrying the allowed next statuses otherwise
//
// Example:
//
//	if err := o.ChangeStatus(order.Preparing); err != nil {
//	    var stateErr *errs.InvalidStateError
//	    if errors.As(err, &stateErr) {
//	        // stateErr.Allowed lists the legal next statuses
//	    }
//	}
func (o *Order) ChangeStatus(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// CanBeCancelled reports whether the order may still be cancelled.
func (o *Order) CanBeCancelled() bool {
	return o.status.CanBeCancelled()
}

// EnsureCancellable returns an InvalidStateError when the order is past the
// point where it can be cancelled.
func (o *Order) EnsureCancellable() error {
	if o.CanBeCancelled() {
		return nil
	}

	return errs.NewInvalidStateErrorWithCause(
		"status",
		o.status.Literal(),
		literals([]Status{Processing, Preparing}),
		ErrOrderCannotBeCancelled,
	)
}

// setCustomerName validates and sets the customer name.
func (o *Order) setCustomerName(customerName string) error {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}
	if n := utf8.RuneCountInString(customerName); n > MaxCustomerNameLength {
		return errs.NewValueIsOutOfRangeError("customer_name length", n, 1, MaxCustomerNameLength)
	}
	o.customerName = customerName
	return nil
}

// setDishes validates and sets the dish list. Every dish must be persisted
// and appear only once.
func (o *Order) setDishes(dishes []*dish.Dish) error {
	if len(dishes) < MinDishes || len(dishes) > MaxDishes {
		return errs.NewValueIsOutOfRangeError("dishes count", len(dishes), MinDishes, MaxDishes)
	}

	seen := make(map[int64]struct{}, len(dishes))
	for _, d := range dishes {
		if err := d.Validate(); err != nil {
			return err
		}
		if !d.IsPersisted() {
			return errs.NewValueIsInvalidErrorWithCause("dishes", errors.New("dish is not persisted"))
		}
		if _, ok := seen[d.ID().Int64()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("dishes", fmt.Errorf("dish %s is duplicated", d.ID()))
		}
		seen[d.ID().Int64()] = struct{}{}
	}

	o.dishes = make([]*dish.Dish, len(dishes))
	copy(o.dishes, dishes)
	return nil
}

// setOrderTime validates and sets the placement time.
func (o *Order) setOrderTime(orderTime time.Time) error {
	if orderTime.IsZero() {
		return ErrOrderTimeIsRequired
	}
	o.orderTime = orderTime.UTC()
	return nil
}
