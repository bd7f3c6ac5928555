package commands

import (
	"context"
	"log/slog"

	"rides/internal/core/domain/model/ride"
	"rides/internal/core/ports"
)

// FinishRideCommandHandler moves an InProgress ride to Finished.
// A Finished ride can no longer be edited, started or removed.
type FinishRideCommandHandler struct {
	uowFactory RideUoWFactory
	events     eventDispatcher
}

// NewFinishRideCommandHandler creates a handler for finishing rides.
func NewFinishRideCommandHandler(
	uowFactory RideUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) FinishRideCommandHandler {
	return FinishRideCommandHandler{
		uowFactory: uowFactory,
		events:     newEventDispatcher(publisher, logger),
	}
}

// Handle finishes the ride and returns the updated snapshot.
func (h FinishRideCommandHandler) Handle(ctx context.Context, cmd FinishRideCommand) (ride.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return ride.Snapshot{}, err
	}

	r, err := mutateRide(ctx, h.uowFactory, cmd.RideID(), (*ride.Ride).Finish, ports.RideRepository.Update)
	if err != nil {
		return ride.Snapshot{}, err
	}

	h.events.dispatch(ctx, r)
	return r.Snapshot(), nil
}
