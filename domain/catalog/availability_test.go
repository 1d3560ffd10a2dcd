package catalog

import (
	"testing"
	"time"
)

func mustWindow(t *testing.T, week, day int) Window {
	t.Helper()
	w, err := NewWindow(week, day)
	if err != nil {
		t.Fatalf("NewWindow(%d, %d) failed: %v", week, day, err)
	}
	return w
}

func TestEmptyWindowSetIsAlwaysAvailable(t *testing.T) {
	var set WindowSet
	for _, slot := range [][2]int{{1, 1}, {26, 4}, {53, 7}, {10, AnyDay}} {
		if !set.AvailableFor(slot[0], slot[1]) {
			t.Errorf("empty set should be available for week %d day %d", slot[0], slot[1])
		}
	}
}

func TestWindowSetAvailableFor(t *testing.T) {
	set := NewWindowSet(
		mustWindow(t, 5, AnyDay),
		mustWindow(t, 10, 2),
	)

	tests := []struct {
		name string
		week int
		day  int
		want bool
	}{
		{"whole-week window matches any day", 5, 3, true},
		{"whole-week window matches week query", 5, AnyDay, true},
		{"exact pair matches", 10, 2, true},
		{"day window matches week-only query", 10, AnyDay, true},
		{"day window rejects another day", 10, 3, false},
		{"unlisted week rejected", 11, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := set.AvailableFor(tt.week, tt.day); got != tt.want {
				t.Errorf("AvailableFor(%d, %d) = %v, want %v", tt.week, tt.day, got, tt.want)
			}
		})
	}
}

func TestNewWindowValidation(t *testing.T) {
	if _, err := NewWindow(0, 1); err == nil {
		t.Error("week 0 should be rejected")
	}
	if _, err := NewWindow(54, 1); err == nil {
		t.Error("week 54 should be rejected")
	}
	if _, err := NewWindow(10, 8); err == nil {
		t.Error("day 8 should be rejected")
	}
	if _, err := NewWindow(10, AnyDay); err != nil {
		t.Errorf("whole-week window should be accepted: %v", err)
	}
}

func TestWindowSetEncodingRoundTrip(t *testing.T) {
	set := NewWindowSet(
		mustWindow(t, 10, 2),
		mustWindow(t, 5, AnyDay),
		mustWindow(t, 10, 2), // duplicate, dropped
	)

	encoded := set.String()
	if encoded != "5,10:2" {
		t.Fatalf("String() = %q, want %q", encoded, "5,10:2")
	}

	decoded, dropped := ParseWindowSet(encoded)
	if len(dropped) != 0 {
		t.Fatalf("round trip dropped tokens: %v", dropped)
	}
	if decoded.String() != encoded {
		t.Errorf("round trip mismatch: %q != %q", decoded.String(), encoded)
	}
}

func TestParseWindowSetDropsMalformedTokens(t *testing.T) {
	set, dropped := ParseWindowSet("abc,5,60,10:8,10:0,7:3")

	if len(dropped) != 4 {
		t.Fatalf("expected 4 dropped tokens, got %d: %v", len(dropped), dropped)
	}
	if got := set.String(); got != "5,7:3" {
		t.Errorf("surviving set = %q, want %q", got, "5,7:3")
	}
}

func TestParseWindowSetEmptyInput(t *testing.T) {
	for _, input := range []string{"", "  ", ",,"} {
		set, dropped := ParseWindowSet(input)
		if !set.IsEmpty() {
			t.Errorf("ParseWindowSet(%q) should yield the empty set", input)
		}
		if len(dropped) != 0 {
			t.Errorf("ParseWindowSet(%q) dropped %v", input, dropped)
		}
	}
}

func TestSlotOf(t *testing.T) {
	tests := []struct {
		name     string
		instant  time.Time
		wantWeek int
		wantDay  int
	}{
		{
			"sunday maps to ISO day 7",
			time.Date(2026, 1, 4, 12, 0, 0, 0, time.UTC),
			1, 7,
		},
		{
			"monday starts the next ISO week",
			time.Date(2026, 1, 5, 8, 30, 0, 0, time.UTC),
			2, 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week, day := SlotOf(tt.instant)
			if week != tt.wantWeek || day != tt.wantDay {
				t.Errorf("SlotOf(%v) = (%d, %d), want (%d, %d)",
					tt.instant, week, day, tt.wantWeek, tt.wantDay)
			}
		})
	}
}
