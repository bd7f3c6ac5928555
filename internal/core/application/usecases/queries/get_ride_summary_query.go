package queries

import (
	"errors"

	"rides/internal/pkg/guard"
)

var ErrGetRideSummaryQueryIsNotConstructed = errors.New(
	"GetRideSummaryQuery must be created via NewGetRideSummaryQuery constructor",
)

// GetRideSummaryQuery counts rides per state.
//
// Example:
//
//	summary, err := handler.Handle(ctx, NewGetRideSummaryQuery())
//	fmt.Printf("%d of %d rides in progress\n", summary.InProgress, summary.Total)
type GetRideSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRideSummaryQuery creates a parameterless summary query.
func NewGetRideSummaryQuery() GetRideSummaryQuery {
	return GetRideSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRideSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetRideSummaryQueryIsNotConstructed)
}

// GetRideSummaryQueryResponse holds the number of rides in each state.
type GetRideSummaryQueryResponse struct {
	Requested  int
	InProgress int
	Finished   int
	Total      int
}
