package dishrepo

import (
	"context"
	"errors"

	"restaurant/internal/adapters/out/postgres/gateway"
	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDishRepository implements ports.DishRepository using GORM.
type GormDishRepository struct {
	dishes *gateway.Gateway[DishDTO]
	links  *gateway.Gateway[OrderDishDTO]
}

// NewGormDishRepository creates a dish repository bound to db, which may be a transaction.
func NewGormDishRepository(db *gorm.DB) *GormDishRepository {
	return &GormDishRepository{
		dishes: gateway.New[DishDTO](db),
		links:  gateway.New[OrderDishDTO](db),
	}
}

// GetAll returns the whole catalog ordered by id.
func (r *GormDishRepository) GetAll(ctx context.Context) ([]*dish.Dish, error) {
	dtos, err := r.dishes.FindAll(ctx, gateway.OrderByID())
	if err != nil {
		return nil, err
	}
	return ToDomainList(dtos)
}

// Get retrieves a dish by ID.
func (r *GormDishRepository) Get(ctx context.Context, id kernel.ID) (*dish.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.dishes.FindByID(ctx, id.Int64())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dish", id.String())
		}
		return nil, err
	}

	return ToDomain(*dto)
}

// GetByIDs returns the existing dishes among ids, ordered by id.
func (r *GormDishRepository) GetByIDs(ctx context.Context, ids []kernel.ID) ([]*dish.Dish, error) {
	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Int64())
	}

	dtos, err := r.dishes.FindByIDs(ctx, raw, gateway.OrderByID())
	if err != nil {
		return nil, err
	}
	return ToDomainList(dtos)
}

// Add saves a new dish and returns it with its assigned id.
func (r *GormDishRepository) Add(ctx context.Context, aggregate *dish.Dish) (*dish.Dish, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := FromDomain(aggregate)
	dto.ID = 0
	if err := r.dishes.Create(ctx, &dto); err != nil {
		return nil, err
	}

	return ToDomain(dto)
}

// Delete removes a dish. A dish still used by orders is rejected by the
// order_dish foreign key and reported as errs.ObjectIsReferencedError.
func (r *GormDishRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	deleted, err := r.dishes.DeleteByID(ctx, id.Int64())
	if err != nil {
		if errors.Is(err, gateway.ErrForeignKeyViolation) {
			return false, errs.NewObjectIsReferencedErrorWithCause("dish", id.Int64(), err)
		}
		return false, err
	}

	return deleted, nil
}

// IsReferenced reports whether any order contains the dish.
func (r *GormDishRepository) IsReferenced(ctx context.Context, id kernel.ID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	return r.links.Exists(ctx, &OrderDishDTO{DishID: id.Int64()})
}
