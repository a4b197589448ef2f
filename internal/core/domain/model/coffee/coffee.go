// Package coffee contains the Coffee aggregate, a catalog entry the vending
// machine can sell.
package coffee

import (
	"errors"

	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/pkg/errs"
)

var (
	// ErrCoffeeIsNotConstructed is returned when a Coffee instance was not
	// created through the NewCoffee or RestoreCoffee factory methods.
	ErrCoffeeIsNotConstructed = errors.New("Coffee must be created via NewCoffee constructor")

	// ErrNameIsRequired is returned when the coffee name is empty.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrPriceIsNotPositive is returned when the price is zero or was not
	// constructed. Catalog prices are strictly positive.
	ErrPriceIsNotPositive = errs.NewValueIsInvalidError("price must be strictly positive")
)

// Coffee is the catalog aggregate: a product with a unique identity, a name
// unique within the catalog, and a strictly positive price in kopecks.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name must be non-empty
//   - Price must be strictly positive
//   - Can only be created through NewCoffee or RestoreCoffee
type Coffee struct {
	id    kernel.UUID
	name  string
	price kernel.Money

	isConstructed bool
}

// NewCoffee creates a Coffee with validation. This is the only way to create
// a valid catalog entry; all invariants are checked here.
func NewCoffee(id kernel.UUID, name string, price kernel.Money) (*Coffee, error) {
	coffee := &Coffee{
		isConstructed: true,
	}

	if err := errors.Join(
		coffee.setID(id),
		coffee.setName(name),
		coffee.setPrice(price),
	); err != nil {
		return nil, err
	}

	return coffee, nil
}

// RestoreCoffee reconstructs a Coffee from persisted state. It applies the
// same validation as NewCoffee.
func RestoreCoffee(id kernel.UUID, name string, price kernel.Money) (*Coffee, error) {
	return NewCoffee(id, name, price)
}

// Validate ensures the Coffee instance was properly constructed.
func (c *Coffee) Validate() error {
	if !c.isConstructed {
		return ErrCoffeeIsNotConstructed
	}
	return nil
}

// ID returns the unique identifier of the coffee.
func (c *Coffee) ID() kernel.UUID {
	return c.id
}

// Name returns the catalog name of the coffee.
func (c *Coffee) Name() string {
	return c.name
}

// Price returns the current catalog price in kopecks.
func (c *Coffee) Price() kernel.Money {
	return c.price
}

// Rename changes the catalog name. The new name must be non-empty.
func (c *Coffee) Rename(name string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.setName(name)
}

// ChangePrice changes the catalog price. The new price must be strictly
// positive.
func (c *Coffee) ChangePrice(price kernel.Money) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.setPrice(price)
}

func (c *Coffee) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Coffee) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *Coffee) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return ErrPriceIsNotPositive
	}

	c.price = price
	return nil
}
