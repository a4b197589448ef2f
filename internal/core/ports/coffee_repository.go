// Package ports defines repository and unit of work interfaces for the
// coffee machine domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"coffeemachine/internal/core/domain/model/coffee"
	"coffeemachine/internal/core/domain/model/kernel"
)

// CoffeeRepository defines the persistence contract for catalog entries.
//
// Mutations are staged against the enclosing unit of work's transaction and
// become durable only on commit. Reads go through the same transaction, so a
// read after an uncommitted Add within the same scope observes the added
// entity.
type CoffeeRepository interface {
	// Add stages a new coffee. The coffee must be valid and not already
	// exist in the catalog.
	Add(ctx context.Context, aggregate *coffee.Coffee) error

	// Update stages changes to an existing coffee. Returns a not-found
	// error when no catalog row matches the aggregate's identity.
	Update(ctx context.Context, aggregate *coffee.Coffee) error

	// Delete stages removal of an existing coffee. Returns a not-found
	// error when no catalog row matches the aggregate's identity.
	Delete(ctx context.Context, aggregate *coffee.Coffee) error

	// Get retrieves a coffee by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*coffee.Coffee, error)

	// GetByIDOrName retrieves the first coffee matching either the given id
	// or the given name. Either argument may be absent (nil id, empty
	// name), but not both. This is the lookup rule the vending clients
	// rely on: they identify a product by whichever key they have.
	GetByIDOrName(ctx context.Context, id *kernel.UUID, name string) (*coffee.Coffee, error)

	// GetAll retrieves the full catalog.
	GetAll(ctx context.Context) ([]*coffee.Coffee, error)
}
