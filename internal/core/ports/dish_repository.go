// Package ports defines repository interfaces for the restaurant domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/domain/model/kernel"
)

// DishRepository defines the persistence contract for the dish catalog.
type DishRepository interface {
	// GetAll returns every dish ordered by identifier. An empty catalog yields an empty slice.
	GetAll(ctx context.Context) ([]*dish.Dish, error)

	// Get retrieves a dish by identifier.
	// Returns errs.ObjectNotFoundError when the dish does not exist.
	Get(ctx context.Context, id kernel.ID) (*dish.Dish, error)

	// GetByIDs returns the dishes matching ids. Unknown identifiers are silently
	// dropped, so callers compare lengths to detect missing references.
	GetByIDs(ctx context.Context, ids []kernel.ID) ([]*dish.Dish, error)

	// Add persists a new dish and returns it with the storage-assigned identifier.
	Add(ctx context.Context, aggregate *dish.Dish) (*dish.Dish, error)

	// Delete removes a dish. It reports false, without error, when nothing was removed.
	// Returns errs.ObjectIsReferencedError when orders still contain the dish.
	Delete(ctx context.Context, id kernel.ID) (bool, error)

	// IsReferenced reports whether any order contains the dish.
	IsReferenced(ctx context.Context, id kernel.ID) (bool, error)
}
