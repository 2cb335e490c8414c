package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrGetAllDishesQueryIsNotConstructed = errors.New(
	"GetAllDishesQuery must be created via NewGetAllDishesQuery constructor",
)

// GetAllDishesQuery retrieves the whole menu.
type GetAllDishesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDishesQuery creates a query for the menu.
func NewGetAllDishesQuery() GetAllDishesQuery {
	return GetAllDishesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDishesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDishesQueryIsNotConstructed)
}
