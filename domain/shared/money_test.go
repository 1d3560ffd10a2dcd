package shared

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyArithmetic(t *testing.T) {
	a := MustMoney("12.50")
	b := MustMoney("3.25")

	if got := a.Add(b); !got.Equals(MustMoney("15.75")) {
		t.Errorf("Add = %s, want 15.75", got)
	}
	if got := a.Sub(b); !got.Equals(MustMoney("9.25")) {
		t.Errorf("Sub = %s, want 9.25", got)
	}
	if got := b.Times(4); !got.Equals(MustMoney("13.00")) {
		t.Errorf("Times(4) = %s, want 13.00", got)
	}
}

func TestMoneyWithVAT(t *testing.T) {
	base := MustMoney("16.00")

	tests := []struct {
		name string
		rate decimal.Decimal
		want Money
	}{
		{"zero rate leaves the amount unchanged", decimal.Zero, MustMoney("16.00")},
		{"twenty percent", decimal.NewFromInt(20), MustMoney("19.20")},
		{"fractional rate", decimal.NewFromFloat(5.5), MustMoney("16.88")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.WithVAT(tt.rate); !got.Equals(tt.want) {
				t.Errorf("WithVAT(%s) = %s, want %s", tt.rate, got, tt.want)
			}
		})
	}
}

func TestMoneyExactDecimalArithmetic(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3, the reason everything monetary is
	// decimal rather than float64.
	sum := MustMoney("0.10").Add(MustMoney("0.20"))
	if !sum.Equals(MustMoney("0.30")) {
		t.Errorf("0.10 + 0.20 = %s, want 0.30", sum)
	}
}

func TestMoneyComparisons(t *testing.T) {
	small := MustMoney("1.00")
	big := MustMoney("2.00")

	if !small.LessThan(big) {
		t.Error("1.00 should be less than 2.00")
	}
	if big.LessThan(small) {
		t.Error("2.00 should not be less than 1.00")
	}
	if !ZeroMoney().IsZero() {
		t.Error("ZeroMoney should be zero")
	}
	if !small.Sub(big).IsNegative() {
		t.Error("1.00 - 2.00 should be negative")
	}
}

func TestMoneyString(t *testing.T) {
	if got := MustMoney("5").String(); got != "5.00" {
		t.Errorf("String() = %q, want %q", got, "5.00")
	}
	if got := MustMoney("19.2").String(); got != "19.20" {
		t.Errorf("String() = %q, want %q", got, "19.20")
	}
}

func TestNewMoneyFromStringRejectsGarbage(t *testing.T) {
	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Error("expected parse error")
	}
}
