package commands

import (
	"errors"

	"rides/internal/core/domain/model/kernel"
	"rides/internal/pkg/guard"
)

var ErrEditRideCommandIsNotConstructed = errors.New(
	"EditRideCommand must be created via NewEditRideCommand constructor",
)

// EditRideCommand carries the optional new route and distance of a ride.
// A nil field is left unchanged; see ride.Ride.Edit for values treated as absent.
type EditRideCommand struct { //nolint:recvcheck //using for validation
	rideID      kernel.UUID
	origin      *string
	destination *string
	distance    *float64

	guard guard.ConstructorGuard
}

// NewEditRideCommand copies the optional values so later changes by the caller do not leak in.
func NewEditRideCommand(rideID kernel.UUID, origin *string, destination *string, distance *float64) (EditRideCommand, error) {
	if err := rideID.Validate(); err != nil {
		return EditRideCommand{}, err
	}

	return EditRideCommand{
		rideID:      rideID,
		origin:      clone(origin),
		destination: clone(destination),
		distance:    clone(distance),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EditRideCommand) Validate() error {
	return c.guard.Validate(ErrEditRideCommandIsNotConstructed)
}

// RideID returns the ride to edit.
func (c EditRideCommand) RideID() kernel.UUID {
	return c.rideID
}

// Origin returns the new origin, or nil.
func (c EditRideCommand) Origin() *string {
	return clone(c.origin)
}

// Destination returns the new destination, or nil.
func (c EditRideCommand) Destination() *string {
	return clone(c.destination)
}

// Distance returns the new distance, or nil.
func (c EditRideCommand) Distance() *float64 {
	return clone(c.distance)
}

func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}
