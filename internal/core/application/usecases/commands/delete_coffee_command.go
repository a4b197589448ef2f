package commands

import (
	"errors"

	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/pkg/guard"
)

var ErrDeleteCoffeeCommandIsNotConstructed = errors.New(
	"DeleteCoffeeCommand must be created via NewDeleteCoffeeCommand constructor",
)

// DeleteCoffeeCommand represents a request to remove a catalog entry by id.
type DeleteCoffeeCommand struct { //nolint:recvcheck //using for validation
	coffeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCoffeeCommand creates a command to delete a catalog entry.
func NewDeleteCoffeeCommand(coffeeID kernel.UUID) (DeleteCoffeeCommand, error) {
	deleteCommand := DeleteCoffeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deleteCommand.setCoffeeID(coffeeID); err != nil {
		return DeleteCoffeeCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCoffeeCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCoffeeCommandIsNotConstructed)
}

// CoffeeID returns the identifier of the entry to delete.
func (c DeleteCoffeeCommand) CoffeeID() kernel.UUID {
	return c.coffeeID
}

func (c *DeleteCoffeeCommand) setCoffeeID(coffeeID kernel.UUID) error {
	if err := coffeeID.Validate(); err != nil {
		return err
	}

	c.coffeeID = coffeeID
	return nil
}
