package commands

import (
	"context"

	"coffeemachine/internal/core/domain/model/coffee"
)

// UpdateCoffeeCommandHandler handles catalog entry updates. The entry must
// already exist; the update replaces its name and price.
type UpdateCoffeeCommandHandler struct {
	uowFactory CoffeeUoWFactory
}

// NewUpdateCoffeeCommandHandler creates a handler for catalog updates.
func NewUpdateCoffeeCommandHandler(uowFactory CoffeeUoWFactory) UpdateCoffeeCommandHandler {
	return UpdateCoffeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the updated coffee.
// Returns a not-found error when no entry matches the command's id or name.
func (h *UpdateCoffeeCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCoffeeCommand,
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
	found, err := coffeeRepo.GetByIDOrName(ctx, cmd.CoffeeID(), cmd.Name())
	if err != nil {
		return nil, err
	}

	if err = found.Rename(cmd.Name()); err != nil {
		return nil, err
	}
	if err = found.ChangePrice(cmd.Price()); err != nil {
		return nil, err
	}

	if err = coffeeRepo.Update(ctx, found); err != nil {
		return nil, err
	}

	if _, err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return found, nil
}
