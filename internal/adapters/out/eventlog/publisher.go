// Package eventlog is the default ride event publisher: it writes each
// event to the structured log instead of a broker.
package eventlog

import (
	"context"
	"log/slog"

	"rides/internal/core/domain/model/ride"
)

// Publisher implements ports.EventPublisher on top of slog.
type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "ride_events")}
}

// Publish logs every event at info level. It never fails.
func (p *Publisher) Publish(ctx context.Context, events ...ride.Event) error {
	for _, e := range events {
		p.logger.InfoContext(ctx, "Ride event",
			"event_type", string(e.Type),
			"occurred_at", e.OccurredAt,
			slog.Group("ride",
				"id", e.Ride.ID.String(),
				"origin", e.Ride.Origin,
				"destination", e.Ride.Destination,
				"distance", e.Ride.Distance,
				"fare", e.Ride.Fare,
				"state", e.Ride.State.String(),
			),
		)
	}
	return nil
}
