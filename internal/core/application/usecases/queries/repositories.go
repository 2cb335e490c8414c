// Package queries contains read-only operations over dishes and orders.
// Query handlers never change state; the ones reading several rows do so
// inside one transaction so the result is a consistent snapshot.
package queries

import (
	"context"

	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DishReaderFactory creates dish repositories for catalog reads.
	DishReaderFactory interface {
		Create() DishReader
	}

	// DishReader provides access to the dish catalog.
	DishReader interface {
		DishRepository() ports.DishRepository
	}

	// OrderReadUoW is a unit of work used for reading orders.
	OrderReadUoW interface {
		TxManager
		OrderRepository() ports.OrderRepository
	}

	// OrderReadUoWFactory creates new order read units of work.
	OrderReadUoWFactory interface {
		Create() OrderReadUoW
	}

	// MenuStore is the part of the menu cache the dish query reads and fills.
	// Set only stores when no invalidation happened since Generation was read.
	MenuStore interface {
		Get(ctx context.Context) ([]*dish.Dish, bool, error)
		Generation(ctx context.Context) (int64, error)
		Set(ctx context.Context, generation int64, dishes []*dish.Dish) (bool, error)
	}
)
