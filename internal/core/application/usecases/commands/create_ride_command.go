package commands

import (
	"errors"

	"rides/internal/core/domain/model/kernel"
	"rides/internal/pkg/errs"
	"rides/internal/pkg/guard"
)

var ErrCreateRideCommandIsNotConstructed = errors.New(
	"CreateRideCommand must be created via NewCreateRideCommand constructor",
)

// CreateRideCommand represents a request for a new ride.
//
// Example:
//
//	cmd, err := NewCreateRideCommand(kernel.NewUUID(), "A", "B", 10)
//	if err != nil {
//	    return fmt.Errorf("invalid ride data: %w", err)
//	}
//
//	handler := NewCreateRideCommandHandler(uowFactory, publisher, logger)
//	created, err := handler.Handle(ctx, cmd)
type CreateRideCommand struct { //nolint:recvcheck //using for validation
	rideID      kernel.UUID
	origin      string
	destination string
	distance    float64

	guard guard.ConstructorGuard
}

// NewCreateRideCommand validates that the id is valid and that origin and
// destination are not empty. Distance is taken as-is.
func NewCreateRideCommand(rideID kernel.UUID, origin string, destination string, distance float64) (CreateRideCommand, error) {
	cmd := CreateRideCommand{
		distance: distance,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRideID(rideID),
		cmd.setOrigin(origin),
		cmd.setDestination(destination),
	); err != nil {
		return CreateRideCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRideCommand) Validate() error {
	return c.guard.Validate(ErrCreateRideCommandIsNotConstructed)
}

// RideID returns the identifier the new ride will get.
func (c CreateRideCommand) RideID() kernel.UUID {
	return c.rideID
}

// Origin returns where the ride starts.
func (c CreateRideCommand) Origin() string {
	return c.origin
}

// Destination returns where the ride ends.
func (c CreateRideCommand) Destination() string {
	return c.destination
}

// Distance returns the requested distance.
func (c CreateRideCommand) Distance() float64 {
	return c.distance
}

func (c *CreateRideCommand) setRideID(rideID kernel.UUID) error {
	if err := rideID.Validate(); err != nil {
		return err
	}

	c.rideID = rideID
	return nil
}

func (c *CreateRideCommand) setOrigin(origin string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}

	c.origin = origin
	return nil
}

func (c *CreateRideCommand) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}

	c.destination = destination
	return nil
}
