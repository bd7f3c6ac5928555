// Package commands contains the business operations that modify rides.
// Every command follows the same pattern: constructor validation, a unit of
// work around load-check-mutate-persist, and event publication after commit.
package commands

import (
	"context"

	"rides/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RideRepoFactory provides access to the ride repository within a transaction.
	RideRepoFactory interface {
		RideRepository() ports.RideRepository
	}

	// RideUoW manages transactions for ride operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   r, err := uow.RideRepository().Get(ctx, id)
	//   // ... mutate and persist
	//
	//   err = uow.Commit(ctx)
	RideUoW interface {
		TxManager
		RideRepoFactory
	}

	// RideUoWFactory creates new ride unit of work instances.
	RideUoWFactory interface {
		Create() RideUoW
	}
)
