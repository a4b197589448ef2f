package commands

import (
	"context"

	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/core/domain/model/order"
	"coffeemachine/internal/core/domain/services"
)

// PurchaseCoffeeCommandHandler settles a coffee purchase: it looks the
// product up in the catalog, validates the payment, computes the change to
// dispense, and records the vend event, all within one transaction.
//
// The handler's sequence per request is fixed: catalog lookup, payment
// validation, change calculation, order persistence, commit. A failure at
// any step rolls the whole transaction back; nothing is half-recorded.
type PurchaseCoffeeCommandHandler struct {
	uowFactory UoWFactory
	calculator services.ChangeCalculator
}

// NewPurchaseCoffeeCommandHandler creates a handler for purchase settlement.
// Requires a UoWFactory spanning both the catalog and the order ledger.
func NewPurchaseCoffeeCommandHandler(uowFactory UoWFactory) PurchaseCoffeeCommandHandler {
	return PurchaseCoffeeCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewChangeCalculator(),
	}
}

// Handle processes the purchase and returns the change breakdown, largest
// banknote first.
//
// Error classification: a missing product surfaces as a not-found error from
// the catalog lookup; services.ErrInsufficientFunds when the tendered amount
// is below the price; services.ChangeComputationError when the denomination
// set cannot represent the change due (a data defect, nothing is staged);
// any persistence error from staging or commit.
func (h *PurchaseCoffeeCommandHandler) Handle(
	ctx context.Context,
	cmd PurchaseCoffeeCommand,
) ([]kernel.Money, error) {
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

	found, err := uow.CoffeeRepository().GetByIDOrName(ctx, cmd.CoffeeID(), cmd.CoffeeName())
	if err != nil {
		return nil, err
	}

	if cmd.Tendered().IsLess(found.Price()) {
		return nil, services.ErrInsufficientFunds
	}

	change, err := h.calculator.Calculate(found.Price(), cmd.Tendered())
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), found.ID(), found.Price())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if _, err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return change, nil
}
