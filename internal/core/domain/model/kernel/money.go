package kernel

import (
	"fmt"

	"coffeemachine/internal/pkg/errs"
)

// ErrMoneyIsNegative is returned when constructing a Money from a negative
// amount. Amounts are always non-negative; subtraction that would go below
// zero is an error at the call site.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount cannot be negative")

// Money is a value object representing an exact amount in the smallest
// currency subunit (kopecks). Integer arithmetic keeps change calculation
// exact; there is no floating point anywhere in the money path.
//
// The zero value is a valid amount of zero. Money is immutable and safe for
// concurrent use.
type Money struct {
	amount int64
}

// NewMoney creates a Money from an amount in kopecks.
// Returns ErrMoneyIsNegative for negative amounts.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: amount}, nil
}

// Amount returns the amount in kopecks.
func (m Money) Amount() int64 {
	return m.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsLess reports whether m is strictly smaller than other.
func (m Money) IsLess(other Money) bool {
	return m.amount < other.amount
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// Add returns the sum of the two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Sub returns the difference m - other.
// Returns ErrMoneyIsNegative when the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	if m.amount < other.amount {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: m.amount - other.amount}, nil
}

// String formats the amount in kopecks for logs and error messages.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
