// Package orderrepo provides the GORM-backed order repository and the
// mapping between the Order aggregate and its database representation.
package orderrepo

import (
	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting vend events.
// The price is the catalog price captured at the moment of purchase and is
// never revised afterwards.
type OrderDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	CoffeeID uuid.UUID `gorm:"type:uuid;index"`
	Price    int64
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an Order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:       aggregate.ID().Bytes(),
		CoffeeID: aggregate.CoffeeID().Bytes(),
		Price:    aggregate.Price().Amount(),
	}
}

// toDomain converts a database DTO back to an Order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	coffeeID, err := kernel.UUIDFromBytes(dto.CoffeeID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, coffeeID, price)
}
