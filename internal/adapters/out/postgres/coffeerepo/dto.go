// Package coffeerepo provides the GORM-backed catalog repository and the
// mapping between the Coffee aggregate and its database representation.
package coffeerepo

import (
	"coffeemachine/internal/core/domain/model/coffee"
	"coffeemachine/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CoffeeDTO represents the database structure for persisting catalog
// entries. The name carries a unique index: catalog lookups by name must be
// unambiguous.
type CoffeeDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"uniqueIndex"`
	Price int64
}

// TableName specifies the database table name for catalog entries.
func (CoffeeDTO) TableName() string {
	return "coffees"
}

// fromDomain converts a Coffee aggregate to its database representation.
func fromDomain(aggregate *coffee.Coffee) CoffeeDTO {
	return CoffeeDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Price: aggregate.Price().Amount(),
	}
}

// toDomain converts a database DTO back to a Coffee aggregate.
func toDomain(dto CoffeeDTO) (*coffee.Coffee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return coffee.RestoreCoffee(id, dto.Name, price)
}
