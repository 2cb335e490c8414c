package http

import (
	"context"
	"log/slog"
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Use case ports of the HTTP adapter. The command and query handlers satisfy them.
type (
	DishLister interface {
		Handle(ctx context.Context, query queries.GetAllDishesQuery) ([]queries.DishResponse, error)
	}
	DishCreator interface {
		Handle(ctx context.Context, cmd commands.CreateDishCommand) (*dish.Dish, error)
	}
	DishDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteDishCommand) error
	}
	OrderLister interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.OrderResponse, error)
	}
	OrderGetter interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
	}
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	OrderStatusChanger interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
	}
	OrderCanceller interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}
	ReceiptGenerator interface {
		Generate(orderID kernel.ID) ([]byte, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	ListDishes        DishLister
	CreateDish        DishCreator
	DeleteDish        DishDeleter
	ListOrders        OrderLister
	GetOrder          OrderGetter
	CreateOrder       OrderCreator
	ChangeOrderStatus OrderStatusChanger
	CancelOrder       OrderCanceller
	Receipts          ReceiptGenerator
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// RegisterRoutes mounts the API routes on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/dishes", s.ListDishes)
	e.POST("/dishes", s.CreateDish)
	e.DELETE("/dishes/:dish_id", s.DeleteDish)

	e.GET("/orders", s.ListOrders)
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/:order_id", s.GetOrder)
	e.DELETE("/orders/:order_id", s.CancelOrder)
	e.PATCH("/orders/:order_id/status", s.ChangeOrderStatus)
	e.GET("/orders/:order_id/qrcode", s.GetOrderReceipt)
}

// ListDishes handles GET /dishes.
func (s *Server) ListDishes(c echo.Context) error {
	menu, err := s.handlers.ListDishes.Handle(c.Request().Context(), queries.NewGetAllDishesQuery())
	if err != nil {
		return writeError(c, s.logger, err)
	}

	response := make([]Dish, 0, len(menu))
	for _, d := range menu {
		response = append(response, dishFromResponse(d))
	}

	return c.JSON(http.StatusOK, response)
}

// CreateDish handles POST /dishes.
func (s *Server) CreateDish(c echo.Context) error {
	var body NewDish
	if err := c.Bind(&body); err != nil {
		return badRequest(c)
	}

	cmd, err := commands.NewCreateDishCommand(body.Name, body.Description, body.Price, body.Category)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	created, err := s.handlers.CreateDish.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusCreated, dishFromDomain(created))
}

// DeleteDish handles DELETE /dishes/{dish_id}.
func (s *Server) DeleteDish(c echo.Context) error {
	id, err := pathID(c, "dish_id")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	cmd, err := commands.NewDeleteDishCommand(id)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	if err = s.handlers.DeleteDish.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(c echo.Context) error {
	orders, err := s.handlers.ListOrders.Handle(c.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(c, s.logger, err)
	}

	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderFromResponse(o))
	}

	return c.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return badRequest(c)
	}

	cmd, err := commands.NewCreateOrderCommand(body.CustomerName, body.DishIDs)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	placed, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusCreated, orderFromDomain(placed))
}

// GetOrder handles GET /orders/{order_id}.
func (s *Server) GetOrder(c echo.Context) error {
	found, err := s.findOrder(c)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, orderFromResponse(found))
}

// CancelOrder handles DELETE /orders/{order_id}.
func (s *Server) CancelOrder(c echo.Context) error {
	id, err := pathID(c, "order_id")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	if err = s.handlers.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PATCH /orders/{order_id}/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	id, err := pathID(c, "order_id")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	var body StatusChange
	if err = c.Bind(&body); err != nil {
		return badRequest(c)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, body.Status)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	updated, err := s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, orderFromDomain(updated))
}

// GetOrderReceipt handles GET /orders/{order_id}/qrcode.
func (s *Server) GetOrderReceipt(c echo.Context) error {
	found, err := s.findOrder(c)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	id, err := kernel.NewID(found.ID)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	png, err := s.handlers.Receipts.Generate(id)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (s *Server) findOrder(c echo.Context) (queries.OrderResponse, error) {
	id, err := pathID(c, "order_id")
	if err != nil {
		return queries.OrderResponse{}, err
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return queries.OrderResponse{}, err
	}

	return s.handlers.GetOrder.Handle(c.Request().Context(), query)
}

// pathID binds an integer path parameter the way generated OpenAPI servers do.
func pathID(c echo.Context, name string) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func badRequest(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}
