// Package order contains the Order aggregate, one completed vend event.
package order

import (
	"errors"

	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrPriceIsNotPositive is returned when the captured purchase price is
	// not strictly positive. An order always references a sellable coffee.
	ErrPriceIsNotPositive = errs.NewValueIsInvalidError("order price must be strictly positive")
)

// Order records one completed purchase. It references the coffee that was
// sold and carries the catalog price captured at purchase time, so later
// catalog edits do not rewrite the value of past orders.
//
// Orders are immutable once created: there is no update or delete path.
type Order struct {
	id       kernel.UUID
	coffeeID kernel.UUID
	price    kernel.Money

	isConstructed bool
}

// NewOrder creates an Order for the given coffee, freezing the price the
// coffee was sold at. The caller is responsible for ensuring the coffee
// exists; the aggregate only validates its own fields.
func NewOrder(id kernel.UUID, coffeeID kernel.UUID, price kernel.Money) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCoffeeID(coffeeID),
		order.setPrice(price),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state. It applies the
// same validation as NewOrder.
func RestoreOrder(id kernel.UUID, coffeeID kernel.UUID, price kernel.Money) (*Order, error) {
	return NewOrder(id, coffeeID, price)
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the unique identifier of the order.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CoffeeID returns the identifier of the coffee that was sold.
func (o *Order) CoffeeID() kernel.UUID {
	return o.coffeeID
}

// Price returns the catalog price captured at purchase time, in kopecks.
func (o *Order) Price() kernel.Money {
	return o.price
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	o.id = id
	return nil
}

func (o *Order) setCoffeeID(coffeeID kernel.UUID) error {
	if err := coffeeID.Validate(); err != nil {
		return err
	}

	o.coffeeID = coffeeID
	return nil
}

func (o *Order) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return ErrPriceIsNotPositive
	}

	o.price = price
	return nil
}
