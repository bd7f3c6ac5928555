// Package queries contains read operations over the ride registry.
// Queries never mutate rides and return snapshots, not aggregates.
package queries

import (
	"errors"

	"rides/internal/pkg/guard"
)

var ErrListRidesQueryIsNotConstructed = errors.New(
	"ListRidesQuery must be created via NewListRidesQuery constructor",
)

// ListRidesQuery lists rides, optionally filtered by state label.
//
// Example:
//
//	filter := "requested"
//	query := NewListRidesQuery(&filter)
//	rides, err := handler.Handle(ctx, query)
//	// every ride whose state is Requested, in insertion order
type ListRidesQuery struct {
	state *string
	guard guard.ConstructorGuard
}

// NewListRidesQuery creates a list query. A nil or empty state lists every ride.
func NewListRidesQuery(state *string) ListRidesQuery {
	q := ListRidesQuery{guard: guard.NewConstructorGuard()}
	if state != nil && *state != "" {
		s := *state
		q.state = &s
	}
	return q
}

// Validate ensures the query was created through the constructor.
func (q ListRidesQuery) Validate() error {
	return q.guard.Validate(ErrListRidesQueryIsNotConstructed)
}

// State returns the raw filter, or "" and false when none was given.
func (q ListRidesQuery) State() (string, bool) {
	if q.state == nil {
		return "", false
	}
	return *q.state, true
}
