package commands

import (
	"context"
	"errors"

	"coffeemachine/internal/core/domain/model/coffee"
	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/pkg/errs"
)

// CreateCoffeeCommandHandler handles catalog entry creation. A coffee can be
// created only when no existing entry matches its id or its name.
type CreateCoffeeCommandHandler struct {
	uowFactory CoffeeUoWFactory
}

// NewCreateCoffeeCommandHandler creates a handler for catalog creation.
func NewCreateCoffeeCommandHandler(uowFactory CoffeeUoWFactory) CreateCoffeeCommandHandler {
	return CreateCoffeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command and returns the created coffee.
// Returns an errs.ObjectAlreadyExistsError when an entry with the same id or
// name is already in the catalog.
func (h *CreateCoffeeCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCoffeeCommand,
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
	existing, err := coffeeRepo.GetByIDOrName(ctx, cmd.CoffeeID(), cmd.Name())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewObjectAlreadyExistsError("coffee", cmd.Name())
	}

	id := kernel.NewUUID()
	if cmd.CoffeeID() != nil {
		id = *cmd.CoffeeID()
	}

	newCoffee, err := coffee.NewCoffee(id, cmd.Name(), cmd.Price())
	if err != nil {
		return nil, err
	}

	if err = coffeeRepo.Add(ctx, newCoffee); err != nil {
		return nil, err
	}

	if _, err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newCoffee, nil
}
