package transaction

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a strictly positive monetary quantity. The zero value is not a
// valid Amount; use NewAmount. decimal.Decimal is immutable, so Value can
// hand out the internal state without a defensive copy.
type Amount struct {
	value decimal.Decimal
}

// NewAmount validates that value is strictly positive.
func NewAmount(value decimal.Decimal) (Amount, error) {
	if !value.IsPositive() {
		return Amount{}, fmt.Errorf("%w: amount must be greater than zero, got %s", ErrInvalidArgument, value)
	}

	return Amount{value: value}, nil
}

// NewAmountFromString parses a decimal string such as "100.00".
func NewAmountFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: malformed amount %q", ErrInvalidArgument, s)
	}

	return NewAmount(d)
}

// Add returns a new Amount holding the sum.
func (a Amount) Add(other Amount) Amount {
	return Amount{value: a.value.Add(other.value)}
}

// Subtract returns a new Amount holding the difference. Amounts never settle
// to zero or below, so a result that is not strictly positive is an error.
func (a Amount) Subtract(other Amount) (Amount, error) {
	result := a.value.Sub(other.value)
	if !result.IsPositive() {
		return Amount{}, fmt.Errorf("%w: subtracting %s from %s would not leave a positive amount", ErrInvalidArgument, other.value, a.value)
	}

	return Amount{value: result}, nil
}

// GreaterThan reports strict ordering.
func (a Amount) GreaterThan(other Amount) bool {
	return a.value.GreaterThan(other.value)
}

func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

func (a Amount) Value() decimal.Decimal { return a.value }

func (a Amount) String() string { return a.value.String() }

// IsZero reports whether a is the invalid zero value, i.e. was not built
// through NewAmount.
func (a Amount) IsZero() bool { return a.value.IsZero() }
