package orderrepo

import (
	"context"
	"errors"

	"restaurant/internal/adapters/out/postgres/gateway"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

const dishesAssociation = "Dishes"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	orders *gateway.Gateway[OrderDTO]
}

// NewGormOrderRepository creates a new GORM order repository bound to db,
// which may be a transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{
		orders: gateway.New[OrderDTO](db),
	}
}

// GetAll retrieves all orders with their dishes, ordered by id.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	dtos, err := r.orders.FindAll(ctx, gateway.Preload(dishesAssociation), gateway.OrderByID())
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return r.get(ctx, id, gateway.Preload(dishesAssociation))
}

// GetForUpdate retrieves an order by ID and locks its row for the rest of the transaction.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return r.get(ctx, id, gateway.ForUpdate(), gateway.Preload(dishesAssociation))
}

// AddWithDishes saves a new order with its dish links and returns the stored order.
func (r *GormOrderRepository) AddWithDishes(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	dto.Status = int(order.Processing)
	if err := r.orders.Create(ctx, &dto, gateway.Omit(dishesAssociation+".*")); err != nil {
		if errors.Is(err, gateway.ErrForeignKeyViolation) {
			return nil, errs.NewInvalidReferenceErrorWithCause("dish_ids", err, dishIDs(aggregate)...)
		}
		return nil, err
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// UpdateStatus saves the status of an existing order and returns the refreshed order.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	id := aggregate.ID()
	if err := id.Validate(); err != nil {
		return nil, err
	}

	updated, err := r.orders.UpdateColumns(ctx, id.Int64(), &OrderDTO{Status: int(aggregate.Status())}, "status")
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return r.Get(ctx, id)
}

// Delete removes an order; its dish links are removed by the cascading foreign key.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	return r.orders.DeleteByID(ctx, id.Int64())
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.ID, opts ...gateway.Option) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.orders.FindByID(ctx, id.Int64(), opts...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(*dto)
}

func dishIDs(aggregate *order.Order) []any {
	ids := make([]any, 0, len(aggregate.DishIDs()))
	for _, id := range aggregate.DishIDs() {
		ids = append(ids, id.Int64())
	}
	return ids
}
