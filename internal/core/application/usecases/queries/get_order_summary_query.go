package queries

import (
	"errors"

	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/pkg/guard"
)

var ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
	"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
)

// GetOrderSummaryQuery retrieves the sales summary for one coffee. The
// coffee must have at least one recorded order.
type GetOrderSummaryQuery struct {
	coffeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a query for one coffee's sales summary.
func NewGetOrderSummaryQuery(coffeeID kernel.UUID) (GetOrderSummaryQuery, error) {
	if err := coffeeID.Validate(); err != nil {
		return GetOrderSummaryQuery{}, err
	}

	return GetOrderSummaryQuery{
		coffeeID: coffeeID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// CoffeeID returns the identifier of the coffee to summarize.
func (q GetOrderSummaryQuery) CoffeeID() kernel.UUID {
	return q.coffeeID
}
