package queries

import (
	"context"
)

// GetAllOrdersQueryHandler lists orders with their dishes in one read transaction.
type GetAllOrdersQueryHandler struct {
	uowFactory OrderReadUoWFactory
}

// NewGetAllOrdersQueryHandler creates a handler for order listing.
func NewGetAllOrdersQueryHandler(uowFactory OrderReadUoWFactory) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle returns all orders ordered by id.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	responses, err := h.HandleIn(ctx, uow, query)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return responses, nil
}

// HandleIn lists orders inside a unit of work the caller has already begun.
func (h GetAllOrdersQueryHandler) HandleIn(
	ctx context.Context,
	uow OrderReadUoW,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}

	return responses, nil
}
