package cmd

import (
	"context"
	"log/slog"

	httpin "deliverytracking/internal/adapters/in/http"
	"deliverytracking/internal/adapters/out/postgres"
	"deliverytracking/internal/adapters/out/signature"
	"deliverytracking/internal/core/application/usecases/commands"
	"deliverytracking/internal/core/application/usecases/queries"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/services"
	"deliverytracking/internal/core/ports"
	"deliverytracking/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	clock      kernel.Clock
	uowFactory *postgres.GormUnitOfWorkFactory
	lifecycle  services.DeliveryLifecycle
	registry   services.ProblemRegistry
	signatures ports.SignatureVerifier
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	return NewCompositionRootWithClock(cfg, gormDB, logger, kernel.NewSystemClock())
}

// NewCompositionRootWithClock pins the clock every timestamp is taken from.
func NewCompositionRootWithClock(cfg Config, gormDB *gorm.DB, logger *slog.Logger, clock kernel.Clock) *CompositionRoot {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		logger:     logger,
		clock:      clock,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		lifecycle:  services.NewDeliveryLifecycle(clock),
		registry:   services.NewProblemRegistry(clock),
		signatures: signature.NewVerifier(cfg.Signature, logger),
	}
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory(), c.lifecycle)
}

func (c *CompositionRoot) CreateUpdateDeliveryCommandHandler() commands.UpdateDeliveryCommandHandler {
	return commands.NewUpdateDeliveryCommandHandler(c.deliveryUoWFactory(), c.lifecycle)
}

func (c *CompositionRoot) CreatePickUpDeliveryCommandHandler() commands.PickUpDeliveryCommandHandler {
	return commands.NewPickUpDeliveryCommandHandler(c.deliveryUoWFactory(), c.lifecycle)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.deliveryUoWFactory(), c.lifecycle, c.signatures)
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	return commands.NewCancelDeliveryCommandHandler(c.deliveryUoWFactory(), c.lifecycle)
}

func (c *CompositionRoot) CreateReportProblemCommandHandler() commands.ReportProblemCommandHandler {
	return commands.NewReportProblemCommandHandler(c.uoWFactory(), c.registry)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListProblemsQueryHandler() queries.ListProblemsQueryHandler {
	return queries.NewListProblemsQueryHandler(c.uowFactory, c.registry)
}

func (c *CompositionRoot) CreateHasOpenProblemsQueryHandler() queries.HasOpenProblemsQueryHandler {
	return queries.NewHasOpenProblemsQueryHandler(c.uowFactory, c.registry)
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesWithProblemsQueryHandler() queries.GetDeliveriesWithProblemsQueryHandler {
	return queries.NewGetDeliveriesWithProblemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaleDeliveriesQueryHandler() queries.GetStaleDeliveriesQueryHandler {
	return queries.NewGetStaleDeliveriesQueryHandler(c.gormDB)
}

// Handlers wires every use case into the HTTP adapter.
func (c *CompositionRoot) Handlers() httpin.Handlers {
	return httpin.Handlers{
		CreateDelivery:   c.CreateCreateDeliveryCommandHandler(),
		UpdateDelivery:   c.CreateUpdateDeliveryCommandHandler(),
		PickUpDelivery:   c.CreatePickUpDeliveryCommandHandler(),
		CompleteDelivery: c.CreateCompleteDeliveryCommandHandler(),
		CancelDelivery:   c.CreateCancelDeliveryCommandHandler(),
		ReportProblem:    c.CreateReportProblemCommandHandler(),

		GetDelivery:               c.CreateGetDeliveryQueryHandler(),
		ListProblems:              c.CreateListProblemsQueryHandler(),
		HasOpenProblems:           c.CreateHasOpenProblemsQueryHandler(),
		GetActiveDeliveries:       c.CreateGetActiveDeliveriesQueryHandler(),
		GetDeliveriesWithProblems: c.CreateGetDeliveriesWithProblemsQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.cfg.Jobs,
		c.CreateGetDeliveriesWithProblemsQueryHandler(),
		c.CreateGetStaleDeliveriesQueryHandler(),
		c.clock,
		c.logger,
	)
}

// HealthCheck pings the database.
func (c *CompositionRoot) HealthCheck() httpin.HealthCheck {
	return func(ctx context.Context) error {
		sqlDB, err := c.gormDB.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
