package commands

import (
	"errors"

	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/pkg/guard"
)

var (
	ErrPurchaseCoffeeCommandIsNotConstructed = errors.New(
		"PurchaseCoffeeCommand must be created via NewPurchaseCoffeeCommand constructor",
	)
	ErrCoffeeReferenceIsRequired = errors.New("either coffee id or coffee name is required")
)

// PurchaseCoffeeCommand represents a request to buy a coffee: a reference to
// the product (by id, by name, or both) and the cash tendered in kopecks.
//
// Vending clients identify the product by whichever key they have, so the
// command accepts either; at least one must be present.
type PurchaseCoffeeCommand struct { //nolint:recvcheck //using for validation
	coffeeID   *kernel.UUID
	coffeeName string
	tendered   kernel.Money

	guard guard.ConstructorGuard
}

// NewPurchaseCoffeeCommand creates a purchase command. coffeeID may be nil
// and coffeeName may be empty, but not both at once.
func NewPurchaseCoffeeCommand(
	coffeeID *kernel.UUID,
	coffeeName string,
	tendered kernel.Money,
) (PurchaseCoffeeCommand, error) {
	purchaseCommand := PurchaseCoffeeCommand{
		coffeeName: coffeeName,
		tendered:   tendered,
		guard:      guard.NewConstructorGuard(),
	}

	if err := purchaseCommand.setCoffeeID(coffeeID); err != nil {
		return PurchaseCoffeeCommand{}, err
	}

	if purchaseCommand.coffeeID == nil && purchaseCommand.coffeeName == "" {
		return PurchaseCoffeeCommand{}, ErrCoffeeReferenceIsRequired
	}

	return purchaseCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PurchaseCoffeeCommand) Validate() error {
	return c.guard.Validate(ErrPurchaseCoffeeCommandIsNotConstructed)
}

// CoffeeID returns the referenced coffee id, or nil when the client
// identified the product by name only.
func (c PurchaseCoffeeCommand) CoffeeID() *kernel.UUID {
	return c.coffeeID
}

// CoffeeName returns the referenced coffee name, or an empty string when the
// client identified the product by id only.
func (c PurchaseCoffeeCommand) CoffeeName() string {
	return c.coffeeName
}

// Tendered returns the cash amount inserted by the customer.
func (c PurchaseCoffeeCommand) Tendered() kernel.Money {
	return c.tendered
}

func (c *PurchaseCoffeeCommand) setCoffeeID(coffeeID *kernel.UUID) error {
	if coffeeID == nil {
		return nil
	}
	if err := coffeeID.Validate(); err != nil {
		return err
	}

	c.coffeeID = coffeeID
	return nil
}
