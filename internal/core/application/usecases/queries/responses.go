package queries

import (
	"time"

	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/domain/model/order"
)

// DishResponse is the read model of a catalog dish.
type DishResponse struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Category    string
}

// OrderResponse is the read model of an order with its dishes.
// Status carries the wire literal, e.g. "в обработке".
type OrderResponse struct {
	ID           int64
	CustomerName string
	Status       string
	OrderTime    time.Time
	Total        float64
	Dishes       []DishResponse
}

func toDishResponse(d *dish.Dish) DishResponse {
	return DishResponse{
		ID:          d.ID().Int64(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price().Amount(),
		Category:    d.Category(),
	}
}

func toDishResponses(dishes []*dish.Dish) []DishResponse {
	responses := make([]DishResponse, 0, len(dishes))
	for _, d := range dishes {
		responses = append(responses, toDishResponse(d))
	}
	return responses
}

func toOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:           o.ID().Int64(),
		CustomerName: o.CustomerName(),
		Status:       o.Status().Literal(),
		OrderTime:    o.OrderTime(),
		Total:        o.Total(),
		Dishes:       toDishResponses(o.Dishes()),
	}
}
