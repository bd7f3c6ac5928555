package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "rides/internal/adapters/in/http"
	"rides/internal/adapters/out/eventlog"
	"rides/internal/adapters/out/memory"
	"rides/internal/adapters/out/postgres"
	"rides/internal/adapters/out/postgres/riderepo"
	"rides/internal/adapters/out/rabbitmq"
	"rides/internal/core/application/usecases/commands"
	"rides/internal/core/application/usecases/queries"
	"rides/internal/core/ports"
	"rides/internal/jobs"

	"github.com/labstack/echo/v4"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// CompositionRoot owns the storage backend and event publisher chosen by
// Config and builds every handler on top of them.
type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger

	reader     ports.RideReader
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher

	closers []func() error
}

// NewCompositionRoot connects to the configured backends. Close releases them.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{cfg: cfg, logger: logger}

	if err := c.initStorage(); err != nil {
		return nil, errors.Join(err, c.Close())
	}
	if err := c.initPublisher(ctx); err != nil {
		return nil, errors.Join(err, c.Close())
	}
	return c, nil
}

func (c *CompositionRoot) initStorage() error {
	switch c.cfg.Storage {
	case StoragePostgres:
		db, err := gorm.Open(gorm_postgres.Open(c.cfg.DSN()), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			return fmt.Errorf("connect to postgres: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		c.closers = append(c.closers, sqlDB.Close)

		if err = postgres.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		c.reader = riderepo.NewGormRideRepository(db)
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
	default:
		registry := memory.NewRegistry()
		c.reader = registry
		c.uowFactory = memory.NewUnitOfWorkFactory(registry)
	}

	c.logger.Info("Storage ready", "storage", c.cfg.Storage)
	return nil
}

func (c *CompositionRoot) initPublisher(ctx context.Context) error {
	if c.cfg.RabbitMQURL == "" {
		c.publisher = eventlog.NewPublisher(c.logger)
		return nil
	}

	publisher, err := rabbitmq.Dial(ctx, c.cfg.RabbitMQURL, c.cfg.RabbitMQExchange, c.logger)
	if err != nil {
		return err
	}
	c.closers = append(c.closers, publisher.Close)
	c.publisher = publisher
	return nil
}

// Close releases connections in reverse order of creation.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *CompositionRoot) rideUoWFactory() commands.RideUoWFactory {
	return FuncRideUoWFactory(func() commands.RideUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateRideCommandHandler() commands.CreateRideCommandHandler {
	return commands.NewCreateRideCommandHandler(c.rideUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateEditRideCommandHandler() commands.EditRideCommandHandler {
	return commands.NewEditRideCommandHandler(c.rideUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateStartRideCommandHandler() commands.StartRideCommandHandler {
	return commands.NewStartRideCommandHandler(c.rideUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateFinishRideCommandHandler() commands.FinishRideCommandHandler {
	return commands.NewFinishRideCommandHandler(c.rideUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateRemoveRideCommandHandler() commands.RemoveRideCommandHandler {
	return commands.NewRemoveRideCommandHandler(c.rideUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateListRidesQueryHandler() queries.ListRidesQueryHandler {
	return queries.NewListRidesQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateGetRideQueryHandler() queries.GetRideQueryHandler {
	return queries.NewGetRideQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateGetRideSummaryQueryHandler() queries.GetRideSummaryQueryHandler {
	return queries.NewGetRideSummaryQueryHandler(c.reader)
}

// CreateRouter builds the HTTP API.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(
		c.CreateCreateRideCommandHandler(),
		c.CreateEditRideCommandHandler(),
		c.CreateStartRideCommandHandler(),
		c.CreateFinishRideCommandHandler(),
		c.CreateRemoveRideCommandHandler(),
		c.CreateListRidesQueryHandler(),
		c.CreateGetRideQueryHandler(),
		c.CreateGetRideSummaryQueryHandler(),
	)
	return httpin.NewRouter(server, c.logger)
}

// CreateJobManager builds the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetRideSummaryQueryHandler(), c.cfg.SummarySchedule, c.logger)
}

type FuncRideUoWFactory func() commands.RideUoW

func (f FuncRideUoWFactory) Create() commands.RideUoW {
	return f()
}
