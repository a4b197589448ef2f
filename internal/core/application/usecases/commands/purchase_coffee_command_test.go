package commands_test

import (
	"testing"

	"coffeemachine/internal/core/application/usecases/commands"
	"coffeemachine/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPurchaseCoffeeCommand(t *testing.T) {
	tendered, err := kernel.NewMoney(5000)
	require.NoError(t, err)

	t.Run("should create command with id only", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewPurchaseCoffeeCommand(&id, "", tendered)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.NotNil(t, cmd.CoffeeID())
		assert.True(t, cmd.CoffeeID().IsEqual(id))
		assert.Empty(t, cmd.CoffeeName())
		assert.True(t, cmd.Tendered().IsEqual(tendered))
	})

	t.Run("should create command with name only", func(t *testing.T) {
		cmd, err := commands.NewPurchaseCoffeeCommand(nil, "Latte", tendered)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Nil(t, cmd.CoffeeID())
		assert.Equal(t, "Latte", cmd.CoffeeName())
	})

	t.Run("should reject command without id and name", func(t *testing.T) {
		_, err := commands.NewPurchaseCoffeeCommand(nil, "", tendered)

		require.ErrorIs(t, err, commands.ErrCoffeeReferenceIsRequired)
	})

	t.Run("should reject zero value id", func(t *testing.T) {
		var id kernel.UUID

		_, err := commands.NewPurchaseCoffeeCommand(&id, "Latte", tendered)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.PurchaseCoffeeCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrPurchaseCoffeeCommandIsNotConstructed)
	})
}
