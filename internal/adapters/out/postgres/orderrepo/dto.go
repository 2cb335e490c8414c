// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"restaurant/internal/adapters/out/postgres/dishrepo"
	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Dishes are linked through the order_dish table.
type OrderDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	CustomerName string    `gorm:"size:100;not null"`
	OrderTime    time.Time `gorm:"not null"`
	Status       int       `gorm:"type:smallint;not null;index"`

	Dishes []dishrepo.DishDTO `gorm:"many2many:order_dish;joinForeignKey:OrderID;joinReferences:DishID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
// Only dish identifiers are carried; the dishes themselves are not written.
func fromDomain(aggregate *order.Order) OrderDTO {
	dishes := make([]dishrepo.DishDTO, 0, len(aggregate.Dishes()))
	for _, id := range aggregate.DishIDs() {
		dishes = append(dishes, dishrepo.DishDTO{ID: id.Int64()})
	}

	return OrderDTO{
		ID:           aggregate.ID().Int64(),
		CustomerName: aggregate.CustomerName(),
		OrderTime:    aggregate.OrderTime(),
		Status:       int(aggregate.Status()),
		Dishes:       dishes,
	}
}

// toDomain converts a database DTO with preloaded dishes to an order aggregate.
// Reconstructs the complete aggregate including status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	dishes := make([]*dish.Dish, 0, len(dto.Dishes))
	for _, dishDTO := range dto.Dishes {
		d, dishErr := dishrepo.ToDomain(dishDTO)
		if dishErr != nil {
			return nil, dishErr
		}
		dishes = append(dishes, d)
	}

	return order.RestoreOrder(id, dto.CustomerName, dto.OrderTime, order.Status(dto.Status), dishes)
}
