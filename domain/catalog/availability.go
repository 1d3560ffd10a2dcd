/*
Package catalog holds the meal/menu side of the lunch service: the
entities orders resolve their line items against, and the availability
windows that decide when an item may be ordered.
*/
package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ISO bounds for availability windows.
const (
	MinWeek = 1
	MaxWeek = 53
	MinDay  = 1
	MaxDay  = 7
)

// AnyDay marks a window that covers every day of its week.
const AnyDay = 0

// Window is one (week, optional day) availability pair. Day AnyDay
// means the whole week. A day without a week is meaningless and is
// rejected at construction.
type Window struct {
	week int
	day  int
}

// NewWeekWindow builds a whole-week window.
func NewWeekWindow(week int) (Window, error) {
	return NewWindow(week, AnyDay)
}

// NewWindow builds a (week, day) window. Day may be AnyDay.
func NewWindow(week, day int) (Window, error) {
	if week < MinWeek || week > MaxWeek {
		return Window{}, fmt.Errorf("week %d out of range [%d,%d]", week, MinWeek, MaxWeek)
	}
	if day != AnyDay && (day < MinDay || day > MaxDay) {
		return Window{}, fmt.Errorf("day %d out of range [%d,%d]", day, MinDay, MaxDay)
	}
	return Window{week: week, day: day}, nil
}

// Week returns the ISO week this window applies to.
func (w Window) Week() int { return w.week }

// Day returns the ISO day, or AnyDay for a whole-week window.
func (w Window) Day() int { return w.day }

// IsWholeWeek reports whether the window covers every day of its week.
func (w Window) IsWholeWeek() bool { return w.day == AnyDay }

func (w Window) matches(week, day int) bool {
	if w.week != week {
		return false
	}
	// A whole-week window satisfies any specific-day query; AnyDay in
	// the query ignores the window's day entirely.
	return w.day == AnyDay || day == AnyDay || w.day == day
}

func (w Window) encode() string {
	if w.day == AnyDay {
		return strconv.Itoa(w.week)
	}
	return strconv.Itoa(w.week) + ":" + strconv.Itoa(w.day)
}

// WindowSet is the sparse set of availability windows attached to a
// catalog item. The empty set means "available every week, every day".
type WindowSet struct {
	windows []Window
}

// NewWindowSet builds a normalized (deduplicated, sorted) set.
func NewWindowSet(windows ...Window) WindowSet {
	s := WindowSet{}
	for _, w := range windows {
		s = s.Add(w)
	}
	return s
}

// Add returns a new set containing w. Duplicates are ignored.
func (s WindowSet) Add(w Window) WindowSet {
	for _, existing := range s.windows {
		if existing == w {
			return s
		}
	}
	out := make([]Window, len(s.windows), len(s.windows)+1)
	copy(out, s.windows)
	out = append(out, w)
	sort.Slice(out, func(i, j int) bool {
		if out[i].week != out[j].week {
			return out[i].week < out[j].week
		}
		return out[i].day < out[j].day
	})
	return WindowSet{windows: out}
}

// IsEmpty reports whether the item carries no availability restriction.
func (s WindowSet) IsEmpty() bool { return len(s.windows) == 0 }

// Windows returns a copy of the set's windows.
func (s WindowSet) Windows() []Window {
	out := make([]Window, len(s.windows))
	copy(out, s.windows)
	return out
}

// AvailableFor answers whether the item may be ordered on (week, day).
// Pass AnyDay as day for week-only queries. An empty set is always
// available; a whole-week window also satisfies specific-day queries.
func (s WindowSet) AvailableFor(week, day int) bool {
	if s.IsEmpty() {
		return true
	}
	for _, w := range s.windows {
		if w.matches(week, day) {
			return true
		}
	}
	return false
}

// String serializes the set to its compact textual form: comma-separated
// tokens, "week" for a whole week or "week:day" for a single day, e.g.
// "5,10:2". The encoding round-trips losslessly through ParseWindowSet.
func (s WindowSet) String() string {
	if s.IsEmpty() {
		return ""
	}
	tokens := make([]string, len(s.windows))
	for i, w := range s.windows {
		tokens[i] = w.encode()
	}
	return strings.Join(tokens, ",")
}

// ParseWindowSet decodes the textual form. Malformed or out-of-range
// tokens do not fail the whole set: they are dropped and reported in
// the second return value so the storage boundary can log them. A
// fully malformed value degrades to the empty ("no constraint") set.
func ParseWindowSet(encoded string) (WindowSet, []string) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return WindowSet{}, nil
	}

	var set WindowSet
	var dropped []string
	for _, token := range strings.Split(encoded, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		w, err := parseWindowToken(token)
		if err != nil {
			dropped = append(dropped, fmt.Sprintf("%q: %v", token, err))
			continue
		}
		set = set.Add(w)
	}
	return set, dropped
}

func parseWindowToken(token string) (Window, error) {
	weekPart, dayPart, hasDay := strings.Cut(token, ":")
	week, err := strconv.Atoi(weekPart)
	if err != nil {
		return Window{}, fmt.Errorf("invalid week")
	}
	if !hasDay {
		return NewWeekWindow(week)
	}
	day, err := strconv.Atoi(dayPart)
	if err != nil {
		return Window{}, fmt.Errorf("invalid day")
	}
	if day == AnyDay {
		return Window{}, fmt.Errorf("day %d out of range [%d,%d]", day, MinDay, MaxDay)
	}
	return NewWindow(week, day)
}

// SlotOf derives the (ISO week, ISO day) ordering slot from an instant.
// It is a pure function of wall-clock time: re-evaluating an update at
// a later moment can legitimately change the availability outcome.
func SlotOf(t time.Time) (week, day int) {
	_, week = t.ISOWeek()
	day = int(t.Weekday())
	if day == 0 { // time.Sunday
		day = 7
	}
	return week, day
}
