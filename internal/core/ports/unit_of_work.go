package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. All mutations made
// through repositories obtained from the same instance are staged against
// one transaction and become durable together on Commit, or not at all.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and returns the number of
	// staged changes that were written. A scope with no staged changes
	// commits to zero. Returns an error if no transaction is active or the
	// commit fails; on failure nothing is written.
	Commit(ctx context.Context) (int, error)

	// Rollback discards all staged changes and releases the transaction.
	// Returns an error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CoffeeRepository returns the CoffeeRepository bound to the current
	// transaction. The same instance is returned for the lifetime of the
	// unit of work.
	CoffeeRepository() CoffeeRepository

	// OrderRepository returns the OrderRepository bound to the current
	// transaction. The same instance is returned for the lifetime of the
	// unit of work.
	OrderRepository() OrderRepository
}
