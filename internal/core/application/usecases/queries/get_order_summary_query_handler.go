package queries

import (
	"context"

	"coffeemachine/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderSummaryQueryHandler retrieves the sales summary for one coffee.
type GetOrderSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSummaryQueryHandler creates a handler for single-coffee
// summary reads.
func NewGetOrderSummaryQueryHandler(db *gorm.DB) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{db: db}
}

// Handle executes the aggregation for one coffee. Returns an
// errs.ObjectNotFoundError when the coffee does not exist or has no
// recorded orders.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (OrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderSummaryQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			COUNT(o.id),
			SUM(o.price)
		FROM orders o
		JOIN coffees c ON c.id = o.coffee_id
		WHERE c.id = ?
		GROUP BY c.id, c.name
	`, query.CoffeeID().Bytes()).Rows()
	if err != nil {
		return OrderSummaryQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderSummaryQueryResponse{}, err
		}
		return OrderSummaryQueryResponse{}, errs.NewObjectNotFoundError("coffeeId", query.CoffeeID().String())
	}

	return scanOrderSummary(rows.Scan)
}
