package ports

import (
	"context"

	"restaurant/internal/core/domain/model/dish"
)

// MenuCache keeps a copy of the dish catalog so listing the menu does not hit
// the database on every request.
//
// Every Invalidate advances the cache generation. A reader takes the
// generation before loading the catalog and hands it back to Set, so a
// snapshot read before a catalog change is never stored after it.
type MenuCache interface {
	// Get returns the cached catalog. The boolean is false on a cache miss.
	Get(ctx context.Context) ([]*dish.Dish, bool, error)

	// Generation returns the current cache generation.
	Generation(ctx context.Context) (int64, error)

	// Set stores the catalog if the generation is still the given one and
	// reports whether it did.
	Set(ctx context.Context, generation int64, dishes []*dish.Dish) (bool, error)

	// Invalidate drops the cached catalog and advances the generation.
	Invalidate(ctx context.Context) error
}
