package commands

import (
	"errors"

	"rides/internal/core/domain/model/kernel"
	"rides/internal/pkg/guard"
)

var ErrStartRideCommandIsNotConstructed = errors.New(
	"StartRideCommand must be created via NewStartRideCommand constructor",
)

// StartRideCommand identifies the ride to start.
type StartRideCommand struct { //nolint:recvcheck //using for validation
	rideID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartRideCommand returns an error when rideID is not a valid identifier.
func NewStartRideCommand(rideID kernel.UUID) (StartRideCommand, error) {
	if err := rideID.Validate(); err != nil {
		return StartRideCommand{}, err
	}

	return StartRideCommand{
		rideID: rideID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartRideCommand) Validate() error {
	return c.guard.Validate(ErrStartRideCommandIsNotConstructed)
}

// RideID returns the ride to start.
func (c StartRideCommand) RideID() kernel.UUID {
	return c.rideID
}
