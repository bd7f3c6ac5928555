package commands

import (
	"context"
	"log/slog"

	"rides/internal/core/domain/model/ride"
	"rides/internal/core/ports"
)

// EditRideCommandHandler amends the route and distance of a ride that is not finished yet.
//
// Errors:
//   - errs.ErrObjectNotFound when the ride does not exist
//   - errs.ErrStateIsInvalid when the ride is Finished
type EditRideCommandHandler struct {
	uowFactory RideUoWFactory
	events     eventDispatcher
}

// NewEditRideCommandHandler creates a handler for ride edits.
func NewEditRideCommandHandler(
	uowFactory RideUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) EditRideCommandHandler {
	return EditRideCommandHandler{
		uowFactory: uowFactory,
		events:     newEventDispatcher(publisher, logger),
	}
}

// Handle applies the edit and returns the updated snapshot.
func (h EditRideCommandHandler) Handle(ctx context.Context, cmd EditRideCommand) (ride.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return ride.Snapshot{}, err
	}

	r, err := mutateRide(ctx, h.uowFactory, cmd.RideID(),
		func(r *ride.Ride) error {
			return r.Edit(cmd.Origin(), cmd.Destination(), cmd.Distance())
		},
		ports.RideRepository.Update,
	)
	if err != nil {
		return ride.Snapshot{}, err
	}

	h.events.dispatch(ctx, r)
	return r.Snapshot(), nil
}
