package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts the transaction.
	Begin(ctx context.Context) error

	// Commit makes every change since Begin visible.
	// Returns error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback discards every change since Begin.
	// Returns error if no transaction is active.
	Rollback(ctx context.Context) error

	// RideRepository returns a RideRepository bound to the current transaction.
	RideRepository() RideRepository
}
