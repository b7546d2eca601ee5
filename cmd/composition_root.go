package cmd

import (
	"log/slog"
	"time"

	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/requestrepo"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/services"
	"ordering/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateIdentifiedCommandHandler() commands.IdentifiedCommandHandler {
	requests := requestrepo.NewGormClientRequestRepository(c.gormDB)
	return commands.NewIdentifiedCommandHandler(requests, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetStockStatusCommandHandler() commands.SetStockStatusCommandHandler {
	return commands.NewSetStockStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetPaidCommandHandler() commands.SetPaidCommandHandler {
	return commands.NewSetPaidCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartStockValidationCommandHandler() commands.StartStockValidationCommandHandler {
	return commands.NewStartStockValidationCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderDraftCommandHandler() commands.CreateOrderDraftCommandHandler {
	return commands.NewCreateOrderDraftCommandHandler(services.NewDraftCalculator())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCardTypesQueryHandler() queries.GetCardTypesQueryHandler {
	return queries.NewGetCardTypesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(gracePeriod time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateStartStockValidationCommandHandler(), gracePeriod, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
