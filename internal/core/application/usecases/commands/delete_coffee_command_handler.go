package commands

import (
	"context"

	"coffeemachine/internal/core/domain/model/coffee"
)

// DeleteCoffeeCommandHandler handles catalog entry removal. Existing orders
// keep their captured purchase price, so deleting a coffee does not affect
// the order ledger.
type DeleteCoffeeCommandHandler struct {
	uowFactory CoffeeUoWFactory
}

// NewDeleteCoffeeCommandHandler creates a handler for catalog deletion.
func NewDeleteCoffeeCommandHandler(uowFactory CoffeeUoWFactory) DeleteCoffeeCommandHandler {
	return DeleteCoffeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command and returns the removed coffee.
// Returns a not-found error when no entry matches the command's id.
func (h *DeleteCoffeeCommandHandler) Handle(
	ctx context.Context,
	cmd DeleteCoffeeCommand,
) (*coffee.Coffee, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	coffeeRepo := uow.CoffeeRepository()
	found, err := coffeeRepo.Get(ctx, cmd.CoffeeID())
	if err != nil {
		return nil, err
	}

	if err = coffeeRepo.Delete(ctx, found); err != nil {
		return nil, err
	}

	if _, err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return found, nil
}
