// Package memory holds the in-process Ride Registry, the default storage
// backend. Contents live as long as the process.
//
// A single lock guards the whole collection. Plain reads take it for the
// duration of the call; a UnitOfWork takes it from Begin until Commit or
// Rollback, so a command's lookup, state check and write happen with no
// other reader or writer in between.
package memory

import (
	"context"

	"rides/internal/core/domain/model/kernel"
	"rides/internal/core/domain/model/ride"

	"golang.org/x/sync/semaphore"
)

// Registry owns every ride known to the service, in insertion order.
// It implements ports.RideRepository; each method is its own transaction.
//
// Example:
//
//	registry := memory.NewRegistry()
//	uowFactory := memory.NewUnitOfWorkFactory(registry)
//	listHandler := queries.NewListRidesQueryHandler(registry)
type Registry struct {
	lock  *semaphore.Weighted
	rides store
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		lock:  semaphore.NewWeighted(1),
		rides: make(store, 0),
	}
}

// acquire blocks until the registry is free or ctx is done.
func (r *Registry) acquire(ctx context.Context) error {
	return r.lock.Acquire(ctx, 1)
}

func (r *Registry) release() {
	r.lock.Release(1)
}

// Get returns the ride with id, or *errs.ObjectNotFoundError.
func (r *Registry) Get(ctx context.Context, id kernel.UUID) (*ride.Ride, error) {
	if err := r.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.release()

	return r.rides.get(id)
}

// List returns all rides in insertion order.
func (r *Registry) List(ctx context.Context) ([]*ride.Ride, error) {
	if err := r.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.release()

	return r.rides.list(all)
}

// ListByState returns the rides in state, in insertion order.
func (r *Registry) ListByState(ctx context.Context, state ride.State) ([]*ride.Ride, error) {
	if err := r.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.release()

	return r.rides.list(inState(state))
}

// CountByState returns the number of rides per state.
func (r *Registry) CountByState(ctx context.Context) (map[ride.State]int, error) {
	if err := r.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.release()

	return r.rides.countByState(), nil
}

// Add appends a new ride.
func (r *Registry) Add(ctx context.Context, aggregate *ride.Ride) error {
	if err := r.acquire(ctx); err != nil {
		return err
	}
	defer r.release()

	return r.rides.add(aggregate)
}

// Update replaces the stored copy of an existing ride.
func (r *Registry) Update(ctx context.Context, aggregate *ride.Ride) error {
	if err := r.acquire(ctx); err != nil {
		return err
	}
	defer r.release()

	return r.rides.update(aggregate)
}

// Remove deletes an existing ride.
func (r *Registry) Remove(ctx context.Context, aggregate *ride.Ride) error {
	if err := r.acquire(ctx); err != nil {
		return err
	}
	defer r.release()

	return r.rides.remove(aggregate)
}
