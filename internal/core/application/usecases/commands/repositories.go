// Package commands contains the operations that change delivery state.
// Every handler follows the same flow: validate the command, open a unit of
// work, load the delivery (row locked), let the domain service decide, persist
// with a version check and commit. Any error rolls the transaction back.
package commands

import (
	"context"

	"deliverytracking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// ProblemRepoFactory provides access to the problem repository within a transaction.
	ProblemRepoFactory interface {
		ProblemRepository() ports.ProblemRepository
	}

	// DeliveryUoW manages transactions for commands that only touch deliveries.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// UoW manages transactions across deliveries and their problems.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   d, err := uow.DeliveryRepository().Get(ctx, id) // locks the row
	//   err = uow.ProblemRepository().Add(ctx, p)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		DeliveryRepoFactory
		ProblemRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
