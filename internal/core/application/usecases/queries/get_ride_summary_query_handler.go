package queries

import (
	"context"

	"rides/internal/core/domain/model/ride"
	"rides/internal/core/ports"
)

// GetRideSummaryQueryHandler aggregates ride counts per state.
type GetRideSummaryQueryHandler struct {
	reader ports.RideReader
}

func NewGetRideSummaryQueryHandler(reader ports.RideReader) GetRideSummaryQueryHandler {
	return GetRideSummaryQueryHandler{reader: reader}
}

// Handle returns the counts. States the reader leaves out count as zero.
func (h GetRideSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetRideSummaryQuery,
) (GetRideSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRideSummaryQueryResponse{}, err
	}

	counts, err := h.reader.CountByState(ctx)
	if err != nil {
		return GetRideSummaryQueryResponse{}, err
	}

	resp := GetRideSummaryQueryResponse{
		Requested:  counts[ride.Requested],
		InProgress: counts[ride.InProgress],
		Finished:   counts[ride.Finished],
	}
	resp.Total = resp.Requested + resp.InProgress + resp.Finished
	return resp, nil
}
