package commands

import (
	"errors"

	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/pkg/guard"
)

var (
	ErrCreateCoffeeCommandIsNotConstructed = errors.New(
		"CreateCoffeeCommand must be created via NewCreateCoffeeCommand constructor",
	)
	ErrNameIsRequired     = errors.New("name is required")
	ErrPriceIsNotPositive = errors.New("price must be greater than 0")
)

// CreateCoffeeCommand represents a request to add a new coffee to the
// catalog. The id is optional: when absent a new one is generated.
type CreateCoffeeCommand struct { //nolint:recvcheck //using for validation
	coffeeID *kernel.UUID
	name     string
	price    kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateCoffeeCommand creates a command to register a new catalog entry.
// Validates that the name is non-empty and the price is strictly positive.
func NewCreateCoffeeCommand(
	coffeeID *kernel.UUID,
	name string,
	price kernel.Money,
) (CreateCoffeeCommand, error) {
	createCommand := CreateCoffeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		createCommand.setCoffeeID(coffeeID),
		createCommand.setName(name),
		createCommand.setPrice(price),
	); err != nil {
		return CreateCoffeeCommand{}, err
	}

	return createCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCoffeeCommand) Validate() error {
	return c.guard.Validate(ErrCreateCoffeeCommandIsNotConstructed)
}

// CoffeeID returns the requested identifier, or nil when one should be
// generated.
func (c CreateCoffeeCommand) CoffeeID() *kernel.UUID {
	return c.coffeeID
}

// Name returns the catalog name for the new coffee.
func (c CreateCoffeeCommand) Name() string {
	return c.name
}

// Price returns the catalog price for the new coffee.
func (c CreateCoffeeCommand) Price() kernel.Money {
	return c.price
}

func (c *CreateCoffeeCommand) setCoffeeID(coffeeID *kernel.UUID) error {
	if coffeeID == nil {
		return nil
	}
	if err := coffeeID.Validate(); err != nil {
		return err
	}

	c.coffeeID = coffeeID
	return nil
}

func (c *CreateCoffeeCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCoffeeCommand) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return ErrPriceIsNotPositive
	}

	c.price = price
	return nil
}
