package domain

import (
	"fmt"
	"math/big"
)

// Money represents a monetary value with precise decimal arithmetic using big.Rat.
// It stores the value as a rational number (numerator/denominator) to avoid
// floating-point precision issues in price computations.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a new Money instance from numerator and denominator.
// Example: NewMoney(6700, 100) represents 67.00.
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator <= 0 {
		return nil, fmt.Errorf("denominator must be positive, got %d", denominator)
	}

	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// NewMoneyFromRat creates a new Money instance from a big.Rat.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return &Money{rat: big.NewRat(0, 1)}
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

// NewMoneyFromDecimal parses a decimal string such as "45.00" or "0.15".
func NewMoneyFromDecimal(s string) (*Money, error) {
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid decimal amount %q", s)
	}
	return &Money{rat: rat}, nil
}

// Zero returns a zero-valued Money.
func Zero() *Money {
	return &Money{rat: big.NewRat(0, 1)}
}

// Numerator returns the numerator of the rational number.
// Returns an error if the value does not fit in int64.
func (m *Money) Numerator() (int64, error) {
	if !m.rat.Num().IsInt64() {
		return 0, ErrMoneyOverflow
	}
	return m.rat.Num().Int64(), nil
}

// Denominator returns the denominator of the rational number.
// Returns an error if the value does not fit in int64.
func (m *Money) Denominator() (int64, error) {
	if !m.rat.Denom().IsInt64() {
		return 0, ErrMoneyOverflow
	}
	return m.rat.Denom().Int64(), nil
}

// Add adds two Money values and returns a new Money instance.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Subtract subtracts another Money value from this one and returns a new Money instance.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// Multiply multiplies this Money value by another and returns a new Money instance.
func (m *Money) Multiply(other *Money) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, other.rat)}
}

// MultiplyByInt multiplies this Money value by an integer quantity.
func (m *Money) MultiplyByInt(n int64) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, big.NewRat(n, 1))}
}

// MultiplyByRat multiplies this Money value by a rational number.
func (m *Money) MultiplyByRat(rat *big.Rat) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, rat)}
}

// Divide divides this Money value by another and returns a new Money instance.
func (m *Money) Divide(other *Money) (*Money, error) {
	if other.rat.Sign() == 0 {
		return nil, fmt.Errorf("cannot divide by zero")
	}
	return &Money{rat: new(big.Rat).Quo(m.rat, other.rat)}, nil
}

// DivideByInt divides this Money value by an integer quantity.
func (m *Money) DivideByInt(n int64) (*Money, error) {
	if n == 0 {
		return nil, fmt.Errorf("cannot divide by zero")
	}
	return &Money{rat: new(big.Rat).Quo(m.rat, big.NewRat(n, 1))}, nil
}

// RoundHalfUp rounds to the given number of decimal places, ties away from zero.
// Example: 1.005 rounded to 2 places is 1.01.
func (m *Money) RoundHalfUp(places int) *Money {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	scaled := new(big.Rat).Mul(m.rat, new(big.Rat).SetInt(scale))

	q, r := new(big.Int).QuoRem(new(big.Int).Set(scaled.Num()), scaled.Denom(), new(big.Int))
	if r.Sign() != 0 {
		doubled := new(big.Int).Abs(r)
		doubled.Mul(doubled, big.NewInt(2))
		if doubled.Cmp(scaled.Denom()) >= 0 {
			if scaled.Num().Sign() >= 0 {
				q.Add(q, big.NewInt(1))
			} else {
				q.Sub(q, big.NewInt(1))
			}
		}
	}

	return &Money{rat: new(big.Rat).SetFrac(q, scale)}
}

// CeilToIncrement rounds up to the nearest multiple of the given increment.
// Example: 171.10 ceiled to a 0.50 increment is 171.50; 172.00 is unchanged.
func (m *Money) CeilToIncrement(increment *Money) *Money {
	ratio := new(big.Rat).Quo(m.rat, increment.rat)

	k, r := new(big.Int).QuoRem(new(big.Int).Set(ratio.Num()), ratio.Denom(), new(big.Int))
	if r.Sign() > 0 {
		k.Add(k, big.NewInt(1))
	}

	return &Money{rat: new(big.Rat).Mul(new(big.Rat).SetInt(k), increment.rat)}
}

// Normalize reduces the fraction to lowest terms (200/2 becomes 100/1).
// big.Rat already keeps values reduced; this returns a reduced copy for storage.
func (m *Money) Normalize() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}

// IsSafeForStorage reports whether both numerator and denominator fit in int64.
func (m *Money) IsSafeForStorage() bool {
	return m.rat.Num().IsInt64() && m.rat.Denom().IsInt64()
}

// IsZero returns true if the money value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the money value is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// IsPositive returns true if the money value is positive.
func (m *Money) IsPositive() bool {
	return m.rat.Sign() > 0
}

// LessThan returns true if this Money value is less than another.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// GreaterThan returns true if this Money value is greater than another.
func (m *Money) GreaterThan(other *Money) bool {
	return m.rat.Cmp(other.rat) > 0
}

// GreaterThanOrEqual returns true if this Money value is greater than or equal to another.
func (m *Money) GreaterThanOrEqual(other *Money) bool {
	return m.rat.Cmp(other.rat) >= 0
}

// Equals returns true if this Money value equals another.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Rat returns a copy of the underlying rational value.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.rat)
}

// Float64 returns an approximate float64 representation (for display only, not calculations).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// FloatString renders the value with the given number of decimal places.
func (m *Money) FloatString(places int) string {
	return m.rat.FloatString(places)
}

// String returns a currency-scale string representation of the money value.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates a deep copy of this Money instance.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
