package menucache

import (
	"context"

	"restaurant/internal/core/domain/model/dish"
)

// Noop is the menu cache used when no Redis address is configured.
// Every Get misses.
type Noop struct{}

func (Noop) Get(context.Context) ([]*dish.Dish, bool, error) {
	return nil, false, nil
}

func (Noop) Generation(context.Context) (int64, error) {
	return 0, nil
}

func (Noop) Set(context.Context, int64, []*dish.Dish) (bool, error) {
	return false, nil
}

func (Noop) Invalidate(context.Context) error {
	return nil
}
