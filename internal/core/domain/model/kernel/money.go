package kernel

import (
	"fmt"

	"varto/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point monetary value. It wraps decimal arithmetic so
// currency amounts never suffer floating-point rounding, and it enforces
// non-negativity: the platform has no concept of a negative price or fee.
//
// The zero value of Money is a valid zero amount, which keeps optional
// fees ergonomic (an order without a delivery fee simply carries zero).
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
// Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a decimal string such as "149.90".
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// MulInt returns the amount multiplied by a whole quantity.
// Used to derive an order line total from its unit price.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Decimal returns the underlying decimal value for persistence mapping.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount in its canonical decimal form.
func (m Money) String() string {
	return m.amount.String()
}
