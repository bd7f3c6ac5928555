package queries

import (
	"errors"

	"rides/internal/core/domain/model/kernel"
	"rides/internal/pkg/guard"
)

var ErrGetRideQueryIsNotConstructed = errors.New(
	"GetRideQuery must be created via NewGetRideQuery constructor",
)

// GetRideQuery fetches a single ride by id.
type GetRideQuery struct {
	rideID kernel.UUID
	guard  guard.ConstructorGuard
}

// NewGetRideQuery creates a query for rideID.
func NewGetRideQuery(rideID kernel.UUID) (GetRideQuery, error) {
	if err := rideID.Validate(); err != nil {
		return GetRideQuery{}, err
	}
	return GetRideQuery{
		rideID: rideID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRideQuery) Validate() error {
	return q.guard.Validate(ErrGetRideQueryIsNotConstructed)
}

func (q GetRideQuery) RideID() kernel.UUID {
	return q.rideID
}
