/*
Package constraint models the global ordering configuration: the daily
time-of-day cutoff after which orders are rejected, the VAT rate
applied at delivery, and a declared-but-unenforced daily order cap.
*/
package constraint

import (
	"fmt"
	"time"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"

	"github.com/shopspring/decimal"
)

// Callers select a constraint record by id.
const (
	// DefaultConstraintID is used when a caller passes no constraint id.
	DefaultConstraintID = 1

	// NoConstraintID disables the cutoff check and zeroes the VAT rate.
	NoConstraintID = -1
)

// Defaults of the implicit record with id DefaultConstraintID.
const (
	DefaultOrderTimeLimit = "10:30:00"
	DefaultMaxOrderPerDay = 500
)

// DefaultRateVAT is the default VAT percentage.
var DefaultRateVAT = decimal.NewFromInt(20)

// ResolveID maps an optional caller-supplied id to a concrete one.
func ResolveID(id *int) int {
	if id == nil {
		return DefaultConstraintID
	}
	return *id
}

// TimeOfDay is a wall-clock time with second precision, independent of
// any date. Value object for the daily ordering cutoff.
type TimeOfDay struct {
	hour   int
	minute int
	second int
}

// NewTimeOfDay validates and builds a TimeOfDay.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, shared.NewValidationError("constraint", "order_time_limit", fmt.Sprintf("hour %d out of range", hour))
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, shared.NewValidationError("constraint", "order_time_limit", fmt.Sprintf("minute %d out of range", minute))
	}
	if second < 0 || second > 59 {
		return TimeOfDay{}, shared.NewValidationError("constraint", "order_time_limit", fmt.Sprintf("second %d out of range", second))
	}
	return TimeOfDay{hour: hour, minute: minute, second: second}, nil
}

// ParseTimeOfDay parses the "15:04:05" textual form.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return TimeOfDay{}, shared.NewValidationError("constraint", "order_time_limit", fmt.Sprintf("invalid time of day %q", s))
	}
	return TimeOfDay{hour: t.Hour(), minute: t.Minute(), second: t.Second()}, nil
}

// MustTimeOfDay parses or panics. For defaults and test fixtures.
func MustTimeOfDay(s string) TimeOfDay {
	tod, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return tod
}

// TimeOfDayFrom extracts the time-of-day of an instant.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{hour: t.Hour(), minute: t.Minute(), second: t.Second()}
}

func (t TimeOfDay) seconds() int {
	return t.hour*3600 + t.minute*60 + t.second
}

// Before reports a strict ordering: equal instants are NOT before.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.seconds() < other.seconds()
}

// Equals compares two TimeOfDay values.
func (t TimeOfDay) Equals(other TimeOfDay) bool {
	return t.seconds() == other.seconds()
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
}

// Constraint is one configuration record. Several may exist; callers
// pick one by id, with DefaultConstraintID as the implicit choice.
type Constraint struct {
	id             int
	orderTimeLimit TimeOfDay
	maxOrderPerDay int
	rateVAT        decimal.Decimal
	createdAt      time.Time
	updatedAt      time.Time
}

// NewConstraint builds a constraint record.
func NewConstraint(orderTimeLimit TimeOfDay, maxOrderPerDay int, rateVAT decimal.Decimal) (*Constraint, error) {
	if maxOrderPerDay < 0 {
		return nil, shared.NewValidationError("constraint", "max_order_per_day", "max order per day cannot be negative")
	}
	if rateVAT.IsNegative() {
		return nil, shared.NewValidationError("constraint", "rate_vat", "VAT rate cannot be negative")
	}
	now := time.Now()
	return &Constraint{
		orderTimeLimit: orderTimeLimit,
		maxOrderPerDay: maxOrderPerDay,
		rateVAT:        rateVAT,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// Default returns the record seeded under DefaultConstraintID:
// cutoff 10:30:00, VAT 20%.
func Default() *Constraint {
	c, _ := NewConstraint(MustTimeOfDay(DefaultOrderTimeLimit), DefaultMaxOrderPerDay, DefaultRateVAT)
	c.id = DefaultConstraintID
	return c
}

func (c *Constraint) ID() int                   { return c.id }
func (c *Constraint) OrderTimeLimit() TimeOfDay { return c.orderTimeLimit }
func (c *Constraint) RateVAT() decimal.Decimal  { return c.rateVAT }
func (c *Constraint) CreatedAt() time.Time      { return c.createdAt }
func (c *Constraint) UpdatedAt() time.Time      { return c.updatedAt }

// MaxOrderPerDay is carried for configuration completeness; no current
// workflow gates on it.
func (c *Constraint) MaxOrderPerDay() int { return c.maxOrderPerDay }

// AcceptsOrderAt is the cutoff rule: the instant's time-of-day must be
// strictly before the limit. Exactly at the limit is rejected.
func (c *Constraint) AcceptsOrderAt(t time.Time) bool {
	return TimeOfDayFrom(t).Before(c.orderTimeLimit)
}

// AssignID sets the storage-assigned identity. Repository use only.
func (c *Constraint) AssignID(id int) {
	if c.id == 0 {
		c.id = id
	}
}

// ReconstructionDTO rebuilds a Constraint from storage. Repository use only.
type ReconstructionDTO struct {
	ID             int
	OrderTimeLimit TimeOfDay
	MaxOrderPerDay int
	RateVAT        decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RebuildFromDTO reconstructs a Constraint without re-running creation rules.
func RebuildFromDTO(dto ReconstructionDTO) *Constraint {
	return &Constraint{
		id:             dto.ID,
		orderTimeLimit: dto.OrderTimeLimit,
		maxOrderPerDay: dto.MaxOrderPerDay,
		rateVAT:        dto.RateVAT,
		createdAt:      dto.CreatedAt,
		updatedAt:      dto.UpdatedAt,
	}
}
