package commands

import (
	"context"

	"rides/internal/core/domain/model/kernel"
	"rides/internal/core/domain/model/ride"
	"rides/internal/core/ports"
)

// mutateRide runs the locate -> check -> mutate -> persist sequence of one
// command inside a single unit of work, so no other command can touch the
// ride between the state check and the write. change must not write
// anything when it fails.
func mutateRide(
	ctx context.Context,
	uowFactory RideUoWFactory,
	rideID kernel.UUID,
	change func(*ride.Ride) error,
	persist func(ports.RideRepository, context.Context, *ride.Ride) error,
) (*ride.Ride, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rideRepo := uow.RideRepository()
	r, err := rideRepo.Get(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if err = change(r); err != nil {
		return nil, err
	}

	if err = persist(rideRepo, ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
