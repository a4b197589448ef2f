package kernel_test

import (
	"testing"

	"coffeemachine/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative amount", func(t *testing.T) {
		m, err := kernel.NewMoney(850)

		require.NoError(t, err)
		assert.Equal(t, int64(850), m.Amount())
		assert.True(t, m.IsPositive())
		assert.False(t, m.IsZero())
	})

	t.Run("should create zero money", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.False(t, m.IsPositive())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.ErrorIs(t, err, kernel.ErrMoneyIsNegative)
	})
}

func TestMoney_Comparisons(t *testing.T) {
	price, _ := kernel.NewMoney(850)
	tendered, _ := kernel.NewMoney(5000)
	samePrice, _ := kernel.NewMoney(850)

	assert.True(t, price.IsLess(tendered))
	assert.False(t, tendered.IsLess(price))
	assert.False(t, price.IsLess(samePrice))
	assert.True(t, price.IsEqual(samePrice))
	assert.False(t, price.IsEqual(tendered))
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		a, _ := kernel.NewMoney(2000)
		b, _ := kernel.NewMoney(150)

		assert.Equal(t, int64(2150), a.Add(b).Amount())
	})

	t.Run("sub", func(t *testing.T) {
		tendered, _ := kernel.NewMoney(5000)
		price, _ := kernel.NewMoney(850)

		due, err := tendered.Sub(price)
		require.NoError(t, err)
		assert.Equal(t, int64(4150), due.Amount())
	})

	t.Run("sub below zero fails", func(t *testing.T) {
		tendered, _ := kernel.NewMoney(500)
		price, _ := kernel.NewMoney(850)

		_, err := tendered.Sub(price)
		require.ErrorIs(t, err, kernel.ErrMoneyIsNegative)
	})

	t.Run("sub to exactly zero", func(t *testing.T) {
		price, _ := kernel.NewMoney(850)

		due, err := price.Sub(price)
		require.NoError(t, err)
		assert.True(t, due.IsZero())
	})
}

func TestMoney_String(t *testing.T) {
	m, _ := kernel.NewMoney(4150)
	assert.Equal(t, "4150", m.String())
}
