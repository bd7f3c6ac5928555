package queries_test

import (
	"context"

	"rides/internal/core/domain/model/kernel"
	"rides/internal/core/domain/model/ride"

	"github.com/stretchr/testify/mock"
)

type MockRideReader struct{ mock.Mock }

func (m *MockRideReader) Get(ctx context.Context, id kernel.UUID) (*ride.Ride, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*ride.Ride)
	return r, args.Error(1)
}

func (m *MockRideReader) List(ctx context.Context) ([]*ride.Ride, error) {
	args := m.Called(ctx)
	rides, _ := args.Get(0).([]*ride.Ride)
	return rides, args.Error(1)
}

func (m *MockRideReader) ListByState(ctx context.Context, state ride.State) ([]*ride.Ride, error) {
	args := m.Called(ctx, state)
	rides, _ := args.Get(0).([]*ride.Ride)
	return rides, args.Error(1)
}

func (m *MockRideReader) CountByState(ctx context.Context) (map[ride.State]int, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[ride.State]int)
	return counts, args.Error(1)
}

func restoredRide(origin string, state ride.State) *ride.Ride {
	r, err := ride.RestoreRide(kernel.NewUUID(), origin, "B", 10, state)
	if err != nil {
		panic(err)
	}
	return r
}
