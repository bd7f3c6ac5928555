package queries

import (
	"context"

	"rides/internal/core/domain/model/ride"
	"rides/internal/core/ports"
)

// ListRidesQueryHandler returns rides in insertion order.
//
// The filter is capitalized before it is compared with the state labels, so
// "finished" and "FINISHED" both select Finished rides. A filter that names
// no state yields an empty list rather than an error.
type ListRidesQueryHandler struct {
	reader ports.RideReader
}

// NewListRidesQueryHandler creates a handler reading from reader.
func NewListRidesQueryHandler(reader ports.RideReader) ListRidesQueryHandler {
	return ListRidesQueryHandler{reader: reader}
}

// Handle runs the query.
func (h ListRidesQueryHandler) Handle(ctx context.Context, query ListRidesQuery) ([]ride.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		rides []*ride.Ride
		err   error
	)

	filter, filtered := query.State()
	if !filtered {
		rides, err = h.reader.List(ctx)
	} else {
		state, ok := ride.ParseStateFilter(filter)
		if !ok {
			return []ride.Snapshot{}, nil
		}
		rides, err = h.reader.ListByState(ctx, state)
	}
	if err != nil {
		return nil, err
	}

	return snapshots(rides), nil
}

func snapshots(rides []*ride.Ride) []ride.Snapshot {
	out := make([]ride.Snapshot, 0, len(rides))
	for _, r := range rides {
		out = append(out, r.Snapshot())
	}
	return out
}
