package kernel

import (
	"fmt"
	"math"

	"grocery/internal/pkg/errs"
)

// Money is a value object representing a non-negative currency amount in the
// platform's operating currency. It is used for order totals, delivery fees
// and partner earnings.
//
// The zero value is valid and represents a zero amount (e.g. a waived
// delivery fee). Money is immutable and safe for concurrent use.
type Money struct {
	amount float64
}

// NewMoney creates a Money amount. The amount must be finite and non-negative.
func NewMoney(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is negative", amount))
	}
	return Money{amount: amount}, nil
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{}
}

// Amount returns the numeric value in currency units.
func (m Money) Amount() float64 {
	return m.amount
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String formats the amount with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.amount)
}
