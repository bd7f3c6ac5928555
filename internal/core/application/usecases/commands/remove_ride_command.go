package commands

import (
	"errors"

	"rides/internal/core/domain/model/kernel"
	"rides/internal/pkg/guard"
)

var ErrRemoveRideCommandIsNotConstructed = errors.New(
	"RemoveRideCommand must be created via NewRemoveRideCommand constructor",
)

// RemoveRideCommand identifies the ride to remove.
type RemoveRideCommand struct { //nolint:recvcheck //using for validation
	rideID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveRideCommand returns an error when rideID is not a valid identifier.
func NewRemoveRideCommand(rideID kernel.UUID) (RemoveRideCommand, error) {
	if err := rideID.Validate(); err != nil {
		return RemoveRideCommand{}, err
	}

	return RemoveRideCommand{
		rideID: rideID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveRideCommand) Validate() error {
	return c.guard.Validate(ErrRemoveRideCommandIsNotConstructed)
}

// RideID returns the ride to remove.
func (c RemoveRideCommand) RideID() kernel.UUID {
	return c.rideID
}
