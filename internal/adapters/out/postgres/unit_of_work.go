// Package postgres provides the GORM-based Unit of Work that delivery
// commands and queries run in.
//
// A unit of work created by the factory starts without a transaction.
// Repositories obtained before Begin read and write through the shared
// connection pool and take no row locks, which is what the query side uses.
// After Begin, repositories are bound to the transaction and deliveries are
// read with SELECT ... FOR UPDATE, so two transitions of the same delivery
// are serialized by the database.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	d, err := uow.DeliveryRepository().Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if err = d.PickUp(clock.Now()); err != nil {
//	    return err
//	}
//	if err = uow.DeliveryRepository().Update(ctx, d); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork is single-goroutine. Concurrent operations must use
// separate instances.
package postgres

import (
	"context"
	"log/slog"

	"deliverytracking/internal/adapters/out/postgres/deliveryrepo"
	"deliverytracking/internal/adapters/out/postgres/problemrepo"
	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/problem"
	"deliverytracking/internal/core/ports"
	"deliverytracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. A nil logger disables commit logging.
//
// Example:
//
//	db, err := postgres.Open(cfg.DB, logger)
//	if err != nil {
//	    return err
//	}
//	factory := postgres.NewGormUnitOfWorkFactory(db, logger)
func NewGormUnitOfWorkFactory(db *gorm.DB, logger *slog.Logger) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &GormUnitOfWorkFactory{
		db:     db,
		logger: logger.With("component", "unit_of_work"),
	}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling Begin twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errs.NewStorageError("begin transaction", tx.Error)
	}

	uow.tx = tx
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit makes the transaction's changes permanent. It returns
// gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return errs.NewStorageError("commit transaction", err)
	}

	for _, tracked := range uow.trackedAggregates {
		uow.logger.DebugContext(ctx, "aggregate committed",
			"id", tracked.ID.String(),
			"type", aggregateType(tracked.Aggregate),
		)
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards the transaction's changes. It returns
// gorm.ErrInvalidTransaction when no transaction is active, which makes a
// deferred Rollback after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// DeliveryRepository returns a delivery repository bound to the current
// transaction, or to the pool when none is active. Only transactional reads
// lock rows.
func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	if uow.tx != nil {
		return deliveryrepo.NewGormDeliveryRepository(uow.tx, uow, deliveryrepo.WithRowLocking())
	}
	return deliveryrepo.NewGormDeliveryRepository(uow.db, uow)
}

func (uow *GormUnitOfWork) ProblemRepository() ports.ProblemRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return problemrepo.NewGormProblemRepository(db, uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func aggregateType(aggregate any) string {
	switch aggregate.(type) {
	case *delivery.Delivery:
		return "delivery"
	case *problem.Problem:
		return "problem"
	default:
		return "unknown"
	}
}
