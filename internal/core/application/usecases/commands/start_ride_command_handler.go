package commands

import (
	"context"
	"log/slog"

	"rides/internal/core/domain/model/ride"
	"rides/internal/core/ports"
)

// StartRideCommandHandler moves a Requested ride to InProgress.
//
// Example:
//
//	cmd, _ := NewStartRideCommand(rideID)
//	started, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such ride
//	case errors.Is(err, errs.ErrStateIsInvalid):
//	    // already started or finished
//	}
type StartRideCommandHandler struct {
	uowFactory RideUoWFactory
	events     eventDispatcher
}

// NewStartRideCommandHandler creates a handler for starting rides.
func NewStartRideCommandHandler(
	uowFactory RideUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) StartRideCommandHandler {
	return StartRideCommandHandler{
		uowFactory: uowFactory,
		events:     newEventDispatcher(publisher, logger),
	}
}

// Handle starts the ride and returns the updated snapshot.
func (h StartRideCommandHandler) Handle(ctx context.Context, cmd StartRideCommand) (ride.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return ride.Snapshot{}, err
	}

	r, err := mutateRide(ctx, h.uowFactory, cmd.RideID(), (*ride.Ride).Start, ports.RideRepository.Update)
	if err != nil {
		return ride.Snapshot{}, err
	}

	h.events.dispatch(ctx, r)
	return r.Snapshot(), nil
}
