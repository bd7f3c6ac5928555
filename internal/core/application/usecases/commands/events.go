package commands

import (
	"context"
	"log/slog"

	"rides/internal/core/domain/model/ride"
	"rides/internal/core/ports"
)

// eventDispatcher publishes the events a ride recorded during a committed command.
// The change is already durable at that point, so a failed publish is logged
// instead of failing the command.
type eventDispatcher struct {
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func newEventDispatcher(publisher ports.EventPublisher, logger *slog.Logger) eventDispatcher {
	return eventDispatcher{
		publisher: publisher,
		logger:    logger,
	}
}

func (d eventDispatcher) dispatch(ctx context.Context, r *ride.Ride) {
	events := r.DomainEvents()
	if len(events) == 0 {
		return
	}

	if err := d.publisher.Publish(ctx, events...); err != nil {
		d.logger.ErrorContext(ctx, "Failed to publish ride events",
			"ride_id", r.ID().String(),
			"events", len(events),
			"error", err,
		)
	}
	r.ClearDomainEvents()
}
