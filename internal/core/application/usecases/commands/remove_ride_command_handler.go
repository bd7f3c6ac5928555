package commands

import (
	"context"
	"log/slog"

	"rides/internal/core/domain/model/ride"
	"rides/internal/core/ports"
)

// RemoveRideCommandHandler deletes a ride that has not been started.
type RemoveRideCommandHandler struct {
	uowFactory RideUoWFactory
	events     eventDispatcher
}

// NewRemoveRideCommandHandler creates a handler for ride removal.
func NewRemoveRideCommandHandler(
	uowFactory RideUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) RemoveRideCommandHandler {
	return RemoveRideCommandHandler{
		uowFactory: uowFactory,
		events:     newEventDispatcher(publisher, logger),
	}
}

// Handle removes the ride and returns its last snapshot.
func (h RemoveRideCommandHandler) Handle(ctx context.Context, cmd RemoveRideCommand) (ride.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return ride.Snapshot{}, err
	}

	r, err := mutateRide(ctx, h.uowFactory, cmd.RideID(), (*ride.Ride).Remove, ports.RideRepository.Remove)
	if err != nil {
		return ride.Snapshot{}, err
	}

	h.events.dispatch(ctx, r)
	return r.Snapshot(), nil
}
