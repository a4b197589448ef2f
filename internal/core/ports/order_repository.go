package ports

import (
	"context"

	"coffeemachine/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for vend events. Orders
// are append-only: there is no update or delete path.
type OrderRepository interface {
	// Add stages a new order. The order must be valid; the referenced
	// coffee's existence is the settlement service's responsibility.
	Add(ctx context.Context, aggregate *order.Order) error

	// GetAll retrieves every recorded order.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
