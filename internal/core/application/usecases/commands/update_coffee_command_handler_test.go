package commands_test

import (
	"testing"

	"coffeemachine/internal/core/application/usecases/commands"
	"coffeemachine/internal/core/domain/model/kernel"
	"coffeemachine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func updateCommand(t *testing.T, name string, price int64) commands.UpdateCoffeeCommand {
	t.Helper()
	amount, err := kernel.NewMoney(price)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateCoffeeCommand(nil, name, amount)
	require.NoError(t, err)
	return cmd
}

func TestNewUpdateCoffeeCommand(t *testing.T) {
	price, err := kernel.NewMoney(900)
	require.NoError(t, err)

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := commands.NewUpdateCoffeeCommand(nil, "", price)
		require.ErrorIs(t, err, commands.ErrNameIsRequired)
	})

	t.Run("should reject non-positive price", func(t *testing.T) {
		zero, moneyErr := kernel.NewMoney(0)
		require.NoError(t, moneyErr)

		_, err := commands.NewUpdateCoffeeCommand(nil, "Latte", zero)
		require.ErrorIs(t, err, commands.ErrPriceIsNotPositive)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.UpdateCoffeeCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateCoffeeCommandIsNotConstructed)
	})
}

func TestUpdateCoffeeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	latte := catalogLatte(t)
	cmd := updateCommand(t, "Latte", 950)

	coffeeRepo := new(MockCoffeeRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CoffeeRepository").Return(coffeeRepo).Once(),
		coffeeRepo.On("GetByIDOrName", mock.Anything, (*kernel.UUID)(nil), "Latte").Return(latte, nil).Once(),
		coffeeRepo.On("Update", mock.Anything, latte).Return(nil).Once(),
		uow.On("Commit", ctx).Return(1, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCoffeeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCoffeeCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(950), updated.Price().Amount())

	coffeeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateCoffeeCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd := updateCommand(t, "Mocha", 950)

	coffeeRepo := new(MockCoffeeRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CoffeeRepository").Return(coffeeRepo).Once(),
		coffeeRepo.On("GetByIDOrName", mock.Anything, (*kernel.UUID)(nil), "Mocha").
			Return(nil, errs.NewObjectNotFoundError("coffee", "Mocha")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCoffeeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCoffeeCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	coffeeRepo.AssertNotCalled(t, "Update")
	uow.AssertExpectations(t)
}

func TestUpdateCoffeeCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateCoffeeCommand{} // not constructed properly
	factory := new(MockCoffeeUoWFactory)

	h := commands.NewUpdateCoffeeCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
