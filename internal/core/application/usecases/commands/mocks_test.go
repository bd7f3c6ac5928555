package commands_test

import (
	"context"
	"io"
	"log/slog"

	"rides/internal/core/application/usecases/commands"
	"rides/internal/core/domain/model/kernel"
	"rides/internal/core/domain/model/ride"
	"rides/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRideRepository struct{ mock.Mock }

func (m *MockRideRepository) Add(ctx context.Context, r *ride.Ride) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRideRepository) Update(ctx context.Context, r *ride.Ride) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRideRepository) Remove(ctx context.Context, r *ride.Ride) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRideRepository) Get(ctx context.Context, id kernel.UUID) (*ride.Ride, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*ride.Ride)
	return r, args.Error(1)
}

func (m *MockRideRepository) List(ctx context.Context) ([]*ride.Ride, error) {
	args := m.Called(ctx)
	rides, _ := args.Get(0).([]*ride.Ride)
	return rides, args.Error(1)
}

func (m *MockRideRepository) ListByState(ctx context.Context, state ride.State) ([]*ride.Ride, error) {
	args := m.Called(ctx, state)
	rides, _ := args.Get(0).([]*ride.Ride)
	return rides, args.Error(1)
}

func (m *MockRideRepository) CountByState(ctx context.Context) (map[ride.State]int, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[ride.State]int)
	return counts, args.Error(1)
}

type MockRideUoW struct{ mock.Mock }

func (m *MockRideUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRideUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRideUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRideUoW) RideRepository() ports.RideRepository {
	args := m.Called()
	return args.Get(0).(ports.RideRepository)
}

type MockRideUoWFactory struct{ mock.Mock }

func (m *MockRideUoWFactory) Create() commands.RideUoW {
	args := m.Called()
	return args.Get(0).(commands.RideUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, events ...ride.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// eventsOfType matches a published batch holding exactly one event of type t.
func eventsOfType(t ride.EventType) any {
	return mock.MatchedBy(func(events []ride.Event) bool {
		return len(events) == 1 && events[0].Type == t
	})
}

func restoredRide(state ride.State) *ride.Ride {
	r, err := ride.RestoreRide(kernel.NewUUID(), "A", "B", 10, state)
	if err != nil {
		panic(err)
	}
	return r
}

func ptr[T any](v T) *T {
	return &v
}
