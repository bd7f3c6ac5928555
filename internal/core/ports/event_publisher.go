package ports

import (
	"context"

	"rides/internal/core/domain/model/ride"
)

// EventPublisher delivers ride domain events to the outside world.
// Handlers call it only after the originating change was committed.
type EventPublisher interface {
	Publish(ctx context.Context, events ...ride.Event) error
}
