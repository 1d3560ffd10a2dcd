package shared

import "github.com/shopspring/decimal"

// Money is a value object wrapping a decimal amount. All monetary
// arithmetic in the system goes through it so that totals and wallet
// balances never touch binary floating point. The zero value is 0.00.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money value object from a decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromString parses a decimal literal such as "12.50".
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: d}, nil
}

// MustMoney parses a decimal literal and panics on failure.
// Intended for constants and test fixtures only.
func MustMoney(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns the additive identity.
func ZeroMoney() Money { return Money{} }

// Amount exposes the underlying decimal.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Times returns m multiplied by an integer quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// WithVAT returns m + m * ratePercent/100.
func (m Money) WithVAT(ratePercent decimal.Decimal) Money {
	vat := m.amount.Mul(ratePercent).Div(decimal.NewFromInt(100))
	return Money{amount: m.amount.Add(vat)}
}

// LessThan reports m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsNegative reports m < 0.
func (m Money) IsNegative() bool { return m.amount.IsNegative() }

// IsZero reports m == 0.
func (m Money) IsZero() bool { return m.amount.IsZero() }

// Equals compares two Money value objects by amount.
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimal places, the display
// precision used everywhere the amount leaves the system.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
