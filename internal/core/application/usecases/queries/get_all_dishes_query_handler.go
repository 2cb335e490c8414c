package queries

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/dish"
)

// GetAllDishesQueryHandler lists the menu, reading through the menu cache.
// Cache failures are logged and the catalog is read from the database instead.
//
// Example:
//
//	handler := NewGetAllDishesQueryHandler(readers, cache, logger)
//	menu, err := handler.Handle(ctx, NewGetAllDishesQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d dishes on the menu\n", len(menu))
type GetAllDishesQueryHandler struct {
	readers DishReaderFactory
	cache   MenuStore
	logger  *slog.Logger
}

// NewGetAllDishesQueryHandler creates a handler for menu listing.
func NewGetAllDishesQueryHandler(
	readers DishReaderFactory,
	cache MenuStore,
	logger *slog.Logger,
) GetAllDishesQueryHandler {
	return GetAllDishesQueryHandler{
		readers: readers,
		cache:   cache,
		logger:  logger.With("component", "menu"),
	}
}

// Handle returns every dish ordered by id. Repeated calls without catalog
// changes return the same result.
func (h GetAllDishesQueryHandler) Handle(ctx context.Context, query GetAllDishesQuery) ([]DishResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cached, ok, err := h.cache.Get(ctx)
	switch {
	case err != nil:
		h.logger.WarnContext(ctx, "failed to read menu cache", "error", err)
	case ok:
		return toDishResponses(cached), nil
	}

	dishes, err := h.load(ctx)
	if err != nil {
		return nil, err
	}

	return toDishResponses(dishes), nil
}

// Refresh reloads the catalog from the database into the cache. A snapshot
// overtaken by a catalog change is dropped without error.
func (h GetAllDishesQueryHandler) Refresh(ctx context.Context) error {
	gen, err := h.cache.Generation(ctx)
	if err != nil {
		return err
	}

	dishes, err := h.readers.Create().DishRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	stored, err := h.cache.Set(ctx, gen, dishes)
	if err != nil {
		return err
	}
	if !stored {
		h.logger.DebugContext(ctx, "menu changed during refresh, snapshot dropped")
	}

	return nil
}

// load reads the catalog and fills the cache. The generation is taken before
// the read so a concurrent dish command makes the write a no-op.
func (h GetAllDishesQueryHandler) load(ctx context.Context) ([]*dish.Dish, error) {
	gen, genErr := h.cache.Generation(ctx)
	if genErr != nil {
		h.logger.WarnContext(ctx, "failed to read menu cache generation", "error", genErr)
	}

	dishes, err := h.readers.Create().DishRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if genErr != nil {
		return dishes, nil
	}

	if _, err = h.cache.Set(ctx, gen, dishes); err != nil {
		h.logger.WarnContext(ctx, "failed to fill menu cache", "error", err)
	}

	return dishes, nil
}
