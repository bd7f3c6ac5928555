package memory_test

import (
	"context"
	"testing"

	"rides/internal/adapters/out/memory"
	"rides/internal/core/domain/model/kernel"
	"rides/internal/core/domain/model/ride"
	"rides/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRide(t *testing.T, origin string) *ride.Ride {
	t.Helper()
	r, err := ride.NewRide(kernel.NewUUID(), origin, "B", 10)
	require.NoError(t, err)
	return r
}

func origins(rides []*ride.Ride) []string {
	out := make([]string, 0, len(rides))
	for _, r := range rides {
		out = append(out, r.Origin())
	}
	return out
}

func TestRegistry_ListKeepsInsertionOrder(t *testing.T) {
	ctx := t.Context()
	registry := memory.NewRegistry()
	for _, origin := range []string{"first", "second", "third"} {
		require.NoError(t, registry.Add(ctx, newRide(t, origin)))
	}

	rides, err := registry.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, origins(rides))
}

func TestRegistry_EmptyListIsNotNil(t *testing.T) {
	rides, err := memory.NewRegistry().List(t.Context())

	require.NoError(t, err)
	assert.NotNil(t, rides)
	assert.Empty(t, rides)
}

func TestRegistry_ListByStateAndCount(t *testing.T) {
	ctx := t.Context()
	registry := memory.NewRegistry()

	a := newRide(t, "a")
	b := newRide(t, "b")
	c := newRide(t, "c")
	for _, r := range []*ride.Ride{a, b, c} {
		require.NoError(t, registry.Add(ctx, r))
	}
	require.NoError(t, b.Start())
	require.NoError(t, registry.Update(ctx, b))

	requested, err := registry.ListByState(ctx, ride.Requested)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, origins(requested))

	counts, err := registry.CountByState(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[ride.State]int{ride.Requested: 2, ride.InProgress: 1}, counts)
}

func TestRegistry_GetReturnsIndependentCopies(t *testing.T) {
	ctx := t.Context()
	registry := memory.NewRegistry()
	r := newRide(t, "A")
	require.NoError(t, registry.Add(ctx, r))

	require.NoError(t, r.Start())

	stored, err := registry.Get(ctx, r.ID())
	require.NoError(t, err)
	assert.Equal(t, ride.Requested, stored.State())
	assert.Empty(t, stored.DomainEvents())
	assert.Equal(t, 26.65, stored.Fare()) //nolint:testifylint // exact comparison is the contract
}

func TestRegistry_NotFound(t *testing.T) {
	ctx := t.Context()
	registry := memory.NewRegistry()
	missing := newRide(t, "A")

	_, err := registry.Get(ctx, missing.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	require.ErrorIs(t, registry.Update(ctx, missing), errs.ErrObjectNotFound)
	require.ErrorIs(t, registry.Remove(ctx, missing), errs.ErrObjectNotFound)
}

func TestRegistry_AddRejectsDuplicateID(t *testing.T) {
	ctx := t.Context()
	registry := memory.NewRegistry()
	r := newRide(t, "A")
	require.NoError(t, registry.Add(ctx, r))

	err := registry.Add(ctx, r)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRegistry_RemoveKeepsOrderOfTheRest(t *testing.T) {
	ctx := t.Context()
	registry := memory.NewRegistry()
	a, b, c := newRide(t, "a"), newRide(t, "b"), newRide(t, "c")
	for _, r := range []*ride.Ride{a, b, c} {
		require.NoError(t, registry.Add(ctx, r))
	}

	require.NoError(t, registry.Remove(ctx, b))

	rides, err := registry.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, origins(rides))
}

func TestRegistry_ReadsHonorCancelledContext(t *testing.T) {
	registry := memory.NewRegistry()
	uow := memory.NewUnitOfWorkFactory(registry).Create()
	require.NoError(t, uow.Begin(t.Context()))
	defer func() { _ = uow.Rollback(t.Context()) }()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := registry.List(ctx)

	require.ErrorIs(t, err, context.Canceled)
}
