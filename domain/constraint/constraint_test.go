package constraint

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestAcceptsOrderAtIsStrict(t *testing.T) {
	c := Default()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"one second before the limit", day.Add(10*time.Hour + 29*time.Minute + 59*time.Second), true},
		{"exactly at the limit", day.Add(10*time.Hour + 30*time.Minute), false},
		{"one second after the limit", day.Add(10*time.Hour + 30*time.Minute + time.Second), false},
		{"early morning", day.Add(6 * time.Hour), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.AcceptsOrderAt(tt.at); got != tt.want {
				t.Errorf("AcceptsOrderAt(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestDefaultRecord(t *testing.T) {
	c := Default()
	if c.ID() != DefaultConstraintID {
		t.Errorf("ID() = %d, want %d", c.ID(), DefaultConstraintID)
	}
	if got := c.OrderTimeLimit().String(); got != DefaultOrderTimeLimit {
		t.Errorf("OrderTimeLimit() = %q, want %q", got, DefaultOrderTimeLimit)
	}
	if !c.RateVAT().Equal(decimal.NewFromInt(20)) {
		t.Errorf("RateVAT() = %s, want 20", c.RateVAT())
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("10:30:00")
	if err != nil {
		t.Fatalf("ParseTimeOfDay failed: %v", err)
	}
	if tod.String() != "10:30:00" {
		t.Errorf("String() = %q", tod.String())
	}

	for _, bad := range []string{"", "25:00:00", "10:61:00", "1030", "10:30"} {
		if _, err := ParseTimeOfDay(bad); err == nil {
			t.Errorf("ParseTimeOfDay(%q) should fail", bad)
		}
	}
}

func TestTimeOfDayBefore(t *testing.T) {
	earlier := MustTimeOfDay("09:00:00")
	later := MustTimeOfDay("10:30:00")

	if !earlier.Before(later) {
		t.Error("09:00:00 should be before 10:30:00")
	}
	if later.Before(earlier) {
		t.Error("10:30:00 should not be before 09:00:00")
	}
	if later.Before(later) {
		t.Error("Before must be strict: equal values are not before")
	}
}

func TestResolveID(t *testing.T) {
	if got := ResolveID(nil); got != DefaultConstraintID {
		t.Errorf("ResolveID(nil) = %d, want %d", got, DefaultConstraintID)
	}
	skip := NoConstraintID
	if got := ResolveID(&skip); got != NoConstraintID {
		t.Errorf("ResolveID(&-1) = %d, want %d", got, NoConstraintID)
	}
	explicit := 3
	if got := ResolveID(&explicit); got != 3 {
		t.Errorf("ResolveID(&3) = %d, want 3", got)
	}
}

func TestNewConstraintValidation(t *testing.T) {
	if _, err := NewConstraint(MustTimeOfDay("10:30:00"), -1, decimal.NewFromInt(20)); err == nil {
		t.Error("negative max order per day should be rejected")
	}
	if _, err := NewConstraint(MustTimeOfDay("10:30:00"), 500, decimal.NewFromInt(-5)); err == nil {
		t.Error("negative VAT rate should be rejected")
	}
}
