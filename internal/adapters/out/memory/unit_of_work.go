package memory

import (
	"context"
	"errors"

	"rides/internal/core/domain/model/kernel"
	"rides/internal/core/domain/model/ride"
	"rides/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one Registry.
type UnitOfWorkFactory struct {
	registry *Registry
}

func NewUnitOfWorkFactory(registry *Registry) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{registry: registry}
}

// Create returns an idle unit of work.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{registry: f.registry}
}

// UnitOfWork holds the registry lock between Begin and Commit/Rollback.
// Writes go to a working copy that replaces the registry contents on Commit
// and is dropped on Rollback.
type UnitOfWork struct {
	registry *Registry
	working  *store
}

// Begin waits for the registry lock. Calling it again while active is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.working != nil {
		return nil
	}

	if err := uow.registry.acquire(ctx); err != nil {
		return err
	}

	working := uow.registry.rides.clone()
	uow.working = &working
	return nil
}

// Commit publishes the working copy and releases the lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.working == nil {
		return ErrNoActiveTransaction
	}

	uow.registry.rides = *uow.working
	uow.working = nil
	uow.registry.release()
	return nil
}

// Rollback drops the working copy and releases the lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.working == nil {
		return ErrNoActiveTransaction
	}

	uow.working = nil
	uow.registry.release()
	return nil
}

// RideRepository returns a repository over the working copy, or the
// registry itself when no transaction is active.
func (uow *UnitOfWork) RideRepository() ports.RideRepository {
	if uow.working == nil {
		return uow.registry
	}
	return &txRepository{rides: uow.working}
}

// txRepository works on a unit of work's working copy. The caller already
// holds the registry lock.
type txRepository struct {
	rides *store
}

func (r *txRepository) Get(_ context.Context, id kernel.UUID) (*ride.Ride, error) {
	return r.rides.get(id)
}

func (r *txRepository) List(_ context.Context) ([]*ride.Ride, error) {
	return r.rides.list(all)
}

func (r *txRepository) ListByState(_ context.Context, state ride.State) ([]*ride.Ride, error) {
	return r.rides.list(inState(state))
}

func (r *txRepository) CountByState(_ context.Context) (map[ride.State]int, error) {
	return r.rides.countByState(), nil
}

func (r *txRepository) Add(_ context.Context, aggregate *ride.Ride) error {
	return r.rides.add(aggregate)
}

func (r *txRepository) Update(_ context.Context, aggregate *ride.Ride) error {
	return r.rides.update(aggregate)
}

func (r *txRepository) Remove(_ context.Context, aggregate *ride.Ride) error {
	return r.rides.remove(aggregate)
}
