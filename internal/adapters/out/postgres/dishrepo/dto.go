// Package dishrepo provides data transfer objects and the GORM repository for
// the dish catalog.
package dishrepo

import (
	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/domain/model/kernel"
)

// DishDTO represents the database structure of a catalog dish.
type DishDTO struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"size:100;not null"`
	Description *string `gorm:"size:500"`
	Price       float64 `gorm:"type:numeric(10,2);not null"`
	Category    string  `gorm:"size:100;not null"`
}

// TableName specifies the database table name for dishes.
func (DishDTO) TableName() string {
	return "dishes"
}

// OrderDishDTO is a row of the order_dish association table. The dish
// repository reads it to find out whether a dish is still in use.
type OrderDishDTO struct {
	OrderID int64 `gorm:"primaryKey"`
	DishID  int64 `gorm:"primaryKey"`
}

// TableName specifies the database table name for order/dish links.
func (OrderDishDTO) TableName() string {
	return "order_dish"
}

// FromDomain converts a dish aggregate to its database representation.
// An empty description is stored as NULL.
func FromDomain(d *dish.Dish) DishDTO {
	var description *string
	if desc := d.Description(); desc != "" {
		description = &desc
	}

	return DishDTO{
		ID:          d.ID().Int64(),
		Name:        d.Name(),
		Description: description,
		Price:       d.Price().Amount(),
		Category:    d.Category(),
	}
}

// ToDomain converts a stored row to a dish aggregate using RestoreDish.
func ToDomain(dto DishDTO) (*dish.Dish, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	var description string
	if dto.Description != nil {
		description = *dto.Description
	}

	return dish.RestoreDish(id, dto.Name, description, price, dto.Category)
}

// ToDomainList converts rows in order.
func ToDomainList(dtos []DishDTO) ([]*dish.Dish, error) {
	dishes := make([]*dish.Dish, 0, len(dtos))
	for _, dto := range dtos {
		d, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, nil
}
