// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"coffeemachine/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles database transaction lifecycle. Ensures atomic
	// operations across multiple repository calls; Commit reports the
	// number of staged changes written.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) (int, error)
		Rollback(ctx context.Context) error
	}

	// CoffeeRepoFactory provides access to the catalog repository within a
	// transaction.
	CoffeeRepoFactory interface {
		CoffeeRepository() ports.CoffeeRepository
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CoffeeUoW manages transactions for catalog-only operations.
	CoffeeUoW interface {
		TxManager
		CoffeeRepoFactory
	}

	// CoffeeUoWFactory creates new catalog unit of work instances.
	CoffeeUoWFactory interface {
		Create() CoffeeUoW
	}

	// UoW manages transactions that span the catalog and the order ledger.
	// Used by the purchase settlement, which reads the catalog and appends
	// an order in one transaction.
	UoW interface {
		TxManager
		CoffeeRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
