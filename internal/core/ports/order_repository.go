package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are always loaded together with their dishes.
type OrderRepository interface {
	// GetAll returns every order with its dishes, ordered by identifier.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Get retrieves an order with its dishes.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetForUpdate is Get that also locks the order row until the surrounding
	// transaction ends. Read-decide-write operations use it so concurrent
	// status changes on one order serialize.
	GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error)

	// AddWithDishes persists a new order and its dish associations and returns
	// the stored order with its identifier.
	AddWithDishes(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// UpdateStatus persists the status of an existing order and returns the
	// refreshed order. It performs no transition check; the aggregate does.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	UpdateStatus(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Delete removes an order together with its dish associations.
	// It reports false, without error, when nothing was removed.
	Delete(ctx context.Context, id kernel.ID) (bool, error)
}
