package queries_test

import (
	"errors"
	"testing"

	"rides/internal/core/application/usecases/queries"
	"rides/internal/core/domain/model/ride"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRideSummaryQueryHandler_Handle(t *testing.T) {
	t.Run("fills missing states with zero", func(t *testing.T) {
		ctx := t.Context()
		reader := new(MockRideReader)
		reader.On("CountByState", ctx).Return(map[ride.State]int{
			ride.Requested: 2,
			ride.Finished:  1,
		}, nil).Once()

		got, err := queries.NewGetRideSummaryQueryHandler(reader).Handle(ctx, queries.NewGetRideSummaryQuery())

		require.NoError(t, err)
		assert.Equal(t, queries.GetRideSummaryQueryResponse{
			Requested: 2,
			Finished:  1,
			Total:     3,
		}, got)
	})

	t.Run("reader error is returned", func(t *testing.T) {
		ctx := t.Context()
		reader := new(MockRideReader)
		reader.On("CountByState", ctx).Return(nil, errors.New("count error")).Once()

		_, err := queries.NewGetRideSummaryQueryHandler(reader).Handle(ctx, queries.NewGetRideSummaryQuery())

		require.EqualError(t, err, "count error")
	})

	t.Run("zero value query is rejected", func(t *testing.T) {
		_, err := queries.NewGetRideSummaryQueryHandler(new(MockRideReader)).Handle(t.Context(), queries.GetRideSummaryQuery{})

		require.ErrorIs(t, err, queries.ErrGetRideSummaryQueryIsNotConstructed)
	})
}
