package queries

import (
	"errors"

	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/pkg/guard"
)

var ErrGetOrderSummariesQueryIsNotConstructed = errors.New(
	"GetOrderSummariesQuery must be created via NewGetOrderSummariesQuery constructor",
)

// GetOrderSummariesQuery retrieves sales totals per coffee: every recorded
// order grouped by the coffee it references.
type GetOrderSummariesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderSummariesQuery creates a query for all order summaries.
func NewGetOrderSummariesQuery() GetOrderSummariesQuery {
	return GetOrderSummariesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummariesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummariesQueryIsNotConstructed)
}

// OrderSummaryQueryResponse is the per-coffee sales read model. TotalCache
// is the sum of the prices captured on the orders at purchase time, so it is
// unaffected by later catalog edits.
type OrderSummaryQueryResponse struct {
	CoffeeID   kernel.UUID
	Name       string
	OrderCount int64
	TotalCache kernel.Money
}
