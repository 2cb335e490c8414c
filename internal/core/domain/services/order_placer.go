package services

import (
	"time"

	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// OrderPlacer is a domain service that builds a new order from the dishes a
// customer requested and the dishes the catalog actually returned for them.
//
// Key responsibilities:
//   - Detecting requested dish identifiers that the catalog does not know
//   - Arranging found dishes in the order they were requested
//   - Creating the order aggregate in its initial status
//
// Example usage:
//
//	placer := services.NewOrderPlacer()
//	found, _ := uow.DishRepository().GetByIDs(ctx, ids)
//
//	o, err := placer.Place("Анна", ids, found, time.Now())
//	if errors.Is(err, errs.ErrInvalidReference) {
//	    // Some requested dishes do not exist
//	}
type OrderPlacer struct{}

// NewOrderPlacer creates a new OrderPlacer instance.
func NewOrderPlacer() OrderPlacer {
	return OrderPlacer{}
}

// Place validates the references and creates the order.
//
// Parameters:
//   - customerName: who placed the order
//   - requested: dish identifiers from the request, in request order
//   - found: dishes the catalog returned for requested; unknown identifiers are absent
//   - now: placement time
//
// Returns:
//   - *order.Order: a new order in Processing status, dishes in request order
//   - error: errs.InvalidReferenceError listing every missing identifier, or
//     the validation errors of order.NewOrder
func (p OrderPlacer) Place(
	customerName string,
	requested []kernel.ID,
	found []*dish.Dish,
	now time.Time,
) (*order.Order, error) {
	byID := make(map[int64]*dish.Dish, len(found))
	for _, d := range found {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		byID[d.ID().Int64()] = d
	}

	dishes := make([]*dish.Dish, 0, len(requested))
	var missing []any
	for _, id := range requested {
		d, ok := byID[id.Int64()]
		if !ok {
			missing = append(missing, id.Int64())
			continue
		}
		dishes = append(dishes, d)
	}

	if len(missing) > 0 {
		return nil, errs.NewInvalidReferenceError("dish_ids", missing...)
	}

	return order.NewOrder(customerName, dishes, now)
}
