// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/pkg/guard"
)

var ErrGetAllCoffeesQueryIsNotConstructed = errors.New(
	"GetAllCoffeesQuery must be created via NewGetAllCoffeesQuery constructor",
)

// GetAllCoffeesQuery retrieves the full catalog of coffees.
type GetAllCoffeesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCoffeesQuery creates a query to retrieve the catalog.
// This is a parameterless query that fetches the complete product list.
func NewGetAllCoffeesQuery() GetAllCoffeesQuery {
	return GetAllCoffeesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCoffeesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCoffeesQueryIsNotConstructed)
}

// CoffeeQueryResponse represents one catalog entry in the read model.
type CoffeeQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Price kernel.Money
}
