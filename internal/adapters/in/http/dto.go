package http

import (
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/domain/model/order"
)

// Error is the body of every failed response.
type Error struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Allowed []string `json:"allowed,omitempty"`
	Missing []any    `json:"missing,omitempty"`
}

type NewDish struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

type Dish struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

type NewOrder struct {
	CustomerName string  `json:"customer_name"`
	DishIDs      []int64 `json:"dish_ids"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type OrderDish struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

type Order struct {
	ID           int64       `json:"id"`
	CustomerName string      `json:"customer_name"`
	Status       string      `json:"status"`
	OrderTime    time.Time   `json:"order_time"`
	Total        float64     `json:"total"`
	Dishes       []OrderDish `json:"dishes"`
}

func dishFromResponse(d queries.DishResponse) Dish {
	return Dish{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
	}
}

func dishFromDomain(d *dish.Dish) Dish {
	return Dish{
		ID:          d.ID().Int64(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price().Amount(),
		Category:    d.Category(),
	}
}

func orderFromResponse(o queries.OrderResponse) Order {
	dishes := make([]OrderDish, 0, len(o.Dishes))
	for _, d := range o.Dishes {
		dishes = append(dishes, OrderDish{ID: d.ID, Name: d.Name, Price: d.Price, Category: d.Category})
	}

	return Order{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Status:       o.Status,
		OrderTime:    o.OrderTime,
		Total:        o.Total,
		Dishes:       dishes,
	}
}

func orderFromDomain(o *order.Order) Order {
	dishes := make([]OrderDish, 0, len(o.Dishes()))
	for _, d := range o.Dishes() {
		dishes = append(dishes, OrderDish{
			ID:       d.ID().Int64(),
			Name:     d.Name(),
			Price:    d.Price().Amount(),
			Category: d.Category(),
		})
	}

	return Order{
		ID:           o.ID().Int64(),
		CustomerName: o.CustomerName(),
		Status:       o.Status().Literal(),
		OrderTime:    o.OrderTime(),
		Total:        o.Total(),
		Dishes:       dishes,
	}
}
