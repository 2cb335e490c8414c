package cmd

import (
	"log/slog"

	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/qrcode"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/ports"
	"restaurant/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	uowFactory *postgres.GormUnitOfWorkFactory
	menuCache  ports.MenuCache
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, menuCache ports.MenuCache, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		menuCache:  menuCache,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	var f commands.DishUoWFactory = FuncDishUoWFactory(func() commands.DishUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDishCommandHandler(f, c.menuCache, c.logger)
}

func (c *CompositionRoot) CreateDeleteDishCommandHandler() commands.DeleteDishCommandHandler {
	var f commands.DishUoWFactory = FuncDishUoWFactory(func() commands.DishUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteDishCommandHandler(f, c.menuCache, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllDishesQueryHandler() queries.GetAllDishesQueryHandler {
	var f queries.DishReaderFactory = FuncDishReaderFactory(func() queries.DishReader {
		return c.uowFactory.Create()
	})
	return queries.NewGetAllDishesQueryHandler(f, c.menuCache, c.logger)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orderReadUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReadUoWFactory())
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		ListDishes:        c.CreateGetAllDishesQueryHandler(),
		CreateDish:        c.CreateCreateDishCommandHandler(),
		DeleteDish:        c.CreateDeleteDishCommandHandler(),
		ListOrders:        c.CreateGetAllOrdersQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),
		Receipts:          qrcode.NewReceiptGenerator(c.cfg.PublicBaseURL),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetAllDishesQueryHandler(), c.cfg.MenuCacheRefreshSpec, c.logger)
}

func (c *CompositionRoot) orderReadUoWFactory() queries.OrderReadUoWFactory {
	return FuncOrderReadUoWFactory(func() queries.OrderReadUoW {
		return c.uowFactory.Create()
	})
}

type FuncDishUoWFactory func() commands.DishUoW

func (f FuncDishUoWFactory) Create() commands.DishUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderReadUoWFactory func() queries.OrderReadUoW

func (f FuncOrderReadUoWFactory) Create() queries.OrderReadUoW {
	return f()
}

type FuncDishReaderFactory func() queries.DishReader

func (f FuncDishReaderFactory) Create() queries.DishReader {
	return f()
}
