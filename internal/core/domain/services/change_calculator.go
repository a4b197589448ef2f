// Package services contains domain services: logic that spans aggregates or,
// as with change calculation, is a pure computation over value objects.
package services

import (
	"errors"
	"fmt"

	"coffeemachine/internal/core/domain/model/kernel"
)

// ErrInsufficientFunds is returned when the tendered amount does not cover
// the catalog price. This is a client-correctable condition, distinct from a
// change computation failure.
var ErrInsufficientFunds = errors.New("tendered amount is less than the price")

// banknotes holds the fixed denomination set in kopecks, largest first. The
// greedy decomposition below relies on the descending order.
var banknotes = []int64{5000, 2000, 1000, 500, 100, 50}

// ChangeComputationError indicates the denomination set cannot exactly
// represent the amount due. It points at a data or configuration defect
// (price unit mismatch), not at user input, and must abort the purchase
// before anything is staged.
type ChangeComputationError struct {
	Due kernel.Money
	Sum kernel.Money
}

func (e *ChangeComputationError) Error() string {
	return fmt.Sprintf("change computation failed: banknote sum %s does not match change due %s", e.Sum, e.Due)
}

// ChangeCalculator decomposes an amount due into vending machine banknotes.
//
// The calculator is a pure, deterministic function over its inputs: the same
// (price, tendered) pair always yields the same banknote sequence, largest
// denomination first. It holds no state and is safe for concurrent use.
type ChangeCalculator struct{}

// NewChangeCalculator creates a new ChangeCalculator instance.
func NewChangeCalculator() ChangeCalculator {
	return ChangeCalculator{}
}

// Calculate converts a price and a tendered amount into the banknotes to
// dispense, largest first.
//
// Returns ErrInsufficientFunds when tendered is below the price, and a
// ChangeComputationError when the amount due is not representable by the
// denomination set (not a multiple of the smallest banknote). The emitted
// sum is re-verified against the amount due before anything is returned;
// short change is never dispensed silently.
func (c ChangeCalculator) Calculate(price, tendered kernel.Money) ([]kernel.Money, error) {
	if tendered.IsLess(price) {
		return nil, ErrInsufficientFunds
	}

	due, err := tendered.Sub(price)
	if err != nil {
		return nil, err
	}

	smallest := banknotes[len(banknotes)-1]
	if due.Amount()%smallest != 0 {
		return nil, &ChangeComputationError{Due: due}
	}

	change, err := c.decompose(due)
	if err != nil {
		return nil, err
	}

	var sum kernel.Money
	for _, banknote := range change {
		sum = sum.Add(banknote)
	}
	if !sum.IsEqual(due) {
		return nil, &ChangeComputationError{Due: due, Sum: sum}
	}

	return change, nil
}

func (c ChangeCalculator) decompose(due kernel.Money) ([]kernel.Money, error) {
	change := make([]kernel.Money, 0)
	remaining := due.Amount()

	for _, value := range banknotes {
		count := remaining / value
		if count <= 0 {
			continue
		}

		banknote, err := kernel.NewMoney(value)
		if err != nil {
			return nil, err
		}

		remaining -= value * count
		for range count {
			change = append(change, banknote)
		}
	}

	return change, nil
}
