package commands

import (
	"context"
	"log/slog"

	"rides/internal/core/domain/model/ride"
	"rides/internal/core/ports"
)

// CreateRideCommandHandler registers new rides in the Requested state.
//
// Example:
//
//	handler := NewCreateRideCommandHandler(uowFactory, publisher, logger)
//	cmd, _ := NewCreateRideCommand(kernel.NewUUID(), "A", "B", 10)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("ride creation failed: %w", err)
//	}
//	// created.Fare == 26.65, created.State == ride.Requested
type CreateRideCommandHandler struct {
	uowFactory RideUoWFactory
	events     eventDispatcher
}

// NewCreateRideCommandHandler creates a handler for ride creation.
func NewCreateRideCommandHandler(
	uowFactory RideUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateRideCommandHandler {
	return CreateRideCommandHandler{
		uowFactory: uowFactory,
		events:     newEventDispatcher(publisher, logger),
	}
}

// Handle creates the ride, persists it in one transaction and returns its snapshot.
// The created event is published once the transaction committed.
func (h CreateRideCommandHandler) Handle(ctx context.Context, cmd CreateRideCommand) (ride.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return ride.Snapshot{}, err
	}

	r, err := ride.NewRide(cmd.RideID(), cmd.Origin(), cmd.Destination(), cmd.Distance())
	if err != nil {
		return ride.Snapshot{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ride.Snapshot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RideRepository().Add(ctx, r); err != nil {
		return ride.Snapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ride.Snapshot{}, err
	}

	h.events.dispatch(ctx, r)
	return r.Snapshot(), nil
}
