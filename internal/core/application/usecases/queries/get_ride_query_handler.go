package queries

import (
	"context"

	"rides/internal/core/domain/model/ride"
	"rides/internal/core/ports"
)

// GetRideQueryHandler looks up one ride.
// Returns *errs.ObjectNotFoundError when the id is unknown.
type GetRideQueryHandler struct {
	reader ports.RideReader
}

func NewGetRideQueryHandler(reader ports.RideReader) GetRideQueryHandler {
	return GetRideQueryHandler{reader: reader}
}

func (h GetRideQueryHandler) Handle(ctx context.Context, query GetRideQuery) (ride.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return ride.Snapshot{}, err
	}

	r, err := h.reader.Get(ctx, query.RideID())
	if err != nil {
		return ride.Snapshot{}, err
	}
	return r.Snapshot(), nil
}
