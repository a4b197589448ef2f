package queries

import (
	"errors"

	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/pkg/guard"
)

var ErrGetCoffeeQueryIsNotConstructed = errors.New(
	"GetCoffeeQuery must be created via NewGetCoffeeQuery constructor",
)

// GetCoffeeQuery retrieves a single catalog entry by id.
type GetCoffeeQuery struct {
	coffeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCoffeeQuery creates a query for one catalog entry.
func NewGetCoffeeQuery(coffeeID kernel.UUID) (GetCoffeeQuery, error) {
	if err := coffeeID.Validate(); err != nil {
		return GetCoffeeQuery{}, err
	}

	return GetCoffeeQuery{
		coffeeID: coffeeID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCoffeeQuery) Validate() error {
	return q.guard.Validate(ErrGetCoffeeQueryIsNotConstructed)
}

// CoffeeID returns the identifier of the requested catalog entry.
func (q GetCoffeeQuery) CoffeeID() kernel.UUID {
	return q.coffeeID
}
