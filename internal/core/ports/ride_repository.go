// Package ports defines the contracts between the ride domain and its adapters.
// The application layer depends only on these interfaces, so storage and
// messaging backends can be swapped at the composition root.
package ports

import (
	"context"

	"rides/internal/core/domain/model/kernel"
	"rides/internal/core/domain/model/ride"
)

// RideReader defines the read side of ride storage.
// Results preserve insertion order.
type RideReader interface {
	// Get retrieves a ride by its identifier.
	// Returns *errs.ObjectNotFoundError when no ride has that id.
	Get(ctx context.Context, id kernel.UUID) (*ride.Ride, error)

	// List returns every ride.
	List(ctx context.Context) ([]*ride.Ride, error)

	// ListByState returns the rides currently in state.
	ListByState(ctx context.Context, state ride.State) ([]*ride.Ride, error)

	// CountByState returns the number of rides per state.
	// States without rides may be absent from the map.
	CountByState(ctx context.Context) (map[ride.State]int, error)
}

// RideRepository defines the persistence contract for ride aggregates.
// Within a unit of work, Get also serializes concurrent writers of the same ride.
type RideRepository interface {
	RideReader

	// Add persists a new ride. The ride must be valid and not already stored.
	Add(ctx context.Context, aggregate *ride.Ride) error

	// Update persists changes to an existing ride.
	Update(ctx context.Context, aggregate *ride.Ride) error

	// Remove deletes an existing ride.
	Remove(ctx context.Context, aggregate *ride.Ride) error
}
