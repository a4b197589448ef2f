package queries

import (
	"context"

	"coffeemachine/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderSummariesQueryHandler aggregates the order ledger per coffee.
type GetOrderSummariesQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSummariesQueryHandler creates a handler for order summary
// aggregation. Requires a GORM database connection for query execution.
func NewGetOrderSummariesQueryHandler(db *gorm.DB) GetOrderSummariesQueryHandler {
	return GetOrderSummariesQueryHandler{db: db}
}

// Handle executes the aggregation: orders joined to the catalog, grouped by
// coffee, one summary per coffee with at least one order. Results are sorted
// by coffee name for consistent output.
func (h GetOrderSummariesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummariesQuery,
) ([]OrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]OrderSummaryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			COUNT(o.id),
			SUM(o.price)
		FROM orders o
		JOIN coffees c ON c.id = o.coffee_id
		GROUP BY c.id, c.name
		ORDER BY c.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		summary, scanErr := scanOrderSummary(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func scanOrderSummary(scan func(dest ...any) error) (OrderSummaryQueryResponse, error) {
	var id uuid.UUID
	var name string
	var orderCount int64
	var totalCache int64

	if err := scan(&id, &name, &orderCount, &totalCache); err != nil {
		return OrderSummaryQueryResponse{}, err
	}

	coffeeID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummaryQueryResponse{}, err
	}

	total, err := kernel.NewMoney(totalCache)
	if err != nil {
		return OrderSummaryQueryResponse{}, err
	}

	return OrderSummaryQueryResponse{
		CoffeeID:   coffeeID,
		Name:       name,
		OrderCount: orderCount,
		TotalCache: total,
	}, nil
}
