package commands

import (
	"errors"

	"rides/internal/core/domain/model/kernel"
	"rides/internal/pkg/guard"
)

var ErrFinishRideCommandIsNotConstructed = errors.New(
	"FinishRideCommand must be created via NewFinishRideCommand constructor",
)

// FinishRideCommand identifies the ride to finish.
type FinishRideCommand struct { //nolint:recvcheck //using for validation
	rideID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinishRideCommand returns an error when rideID is not a valid identifier.
func NewFinishRideCommand(rideID kernel.UUID) (FinishRideCommand, error) {
	if err := rideID.Validate(); err != nil {
		return FinishRideCommand{}, err
	}

	return FinishRideCommand{
		rideID: rideID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishRideCommand) Validate() error {
	return c.guard.Validate(ErrFinishRideCommandIsNotConstructed)
}

// RideID returns the ride to finish.
func (c FinishRideCommand) RideID() kernel.UUID {
	return c.rideID
}
