package commands

import (
	"errors"

	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/pkg/guard"
)

var ErrUpdateCoffeeCommandIsNotConstructed = errors.New(
	"UpdateCoffeeCommand must be created via NewUpdateCoffeeCommand constructor",
)

// UpdateCoffeeCommand represents a request to change an existing catalog
// entry's name and price. The entry is located by id or by name, matching
// the lookup rule used elsewhere.
type UpdateCoffeeCommand struct { //nolint:recvcheck //using for validation
	coffeeID *kernel.UUID
	name     string
	price    kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateCoffeeCommand creates a command to update a catalog entry.
// Validates that the name is non-empty and the price is strictly positive.
func NewUpdateCoffeeCommand(
	coffeeID *kernel.UUID,
	name string,
	price kernel.Money,
) (UpdateCoffeeCommand, error) {
	updateCommand := UpdateCoffeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setCoffeeID(coffeeID),
		updateCommand.setName(name),
		updateCommand.setPrice(price),
	); err != nil {
		return UpdateCoffeeCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCoffeeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCoffeeCommandIsNotConstructed)
}

// CoffeeID returns the identifier of the entry to update, or nil when the
// entry is located by name.
func (c UpdateCoffeeCommand) CoffeeID() *kernel.UUID {
	return c.coffeeID
}

// Name returns the new catalog name.
func (c UpdateCoffeeCommand) Name() string {
	return c.name
}

// Price returns the new catalog price.
func (c UpdateCoffeeCommand) Price() kernel.Money {
	return c.price
}

func (c *UpdateCoffeeCommand) setCoffeeID(coffeeID *kernel.UUID) error {
	if coffeeID == nil {
		return nil
	}
	if err := coffeeID.Validate(); err != nil {
		return err
	}

	c.coffeeID = coffeeID
	return nil
}

func (c *UpdateCoffeeCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateCoffeeCommand) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return ErrPriceIsNotPositive
	}

	c.price = price
	return nil
}
