// Package postgres provides the GORM-based Unit of Work used when rides are
// stored in PostgreSQL.
//
// Each command gets its own unit of work. Inside Begin/Commit the ride
// repository reads rows with SELECT ... FOR UPDATE, so two commands on the
// same ride are serialized by the database:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	r, err := uow.RideRepository().Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if err := r.Start(); err != nil {
//	    return err
//	}
//	if err := uow.RideRepository().Update(ctx, r); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"rides/internal/adapters/out/postgres/riderepo"
	"rides/internal/core/ports"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables the ride repository needs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&riderepo.RideDTO{})
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no active transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork wraps one GORM transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling it again while active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction.
// Returns gorm.ErrInvalidTransaction when none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction.
// Returns gorm.ErrInvalidTransaction when none is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// RideRepository returns a repository bound to the active transaction, with
// row locks on Get. Without a transaction it runs each call on its own.
func (uow *GormUnitOfWork) RideRepository() ports.RideRepository {
	if uow.tx == nil {
		return riderepo.NewGormRideRepository(uow.db)
	}
	return riderepo.NewGormRideRepository(uow.tx).ForUpdate()
}
