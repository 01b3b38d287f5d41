package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Day is a calendar date normalized to midnight UTC. All engine operations
// compare Days by calendar day only; time-of-day never participates.
type Day struct {
	t time.Time
}

// NewDay builds a Day from year, month and day-of-month.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf normalizes an arbitrary time to its calendar day, discarding
// time-of-day and timezone.
func DayOf(t time.Time) Day {
	return NewDay(t.Year(), t.Month(), t.Day())
}

// Time returns the Day as a time.Time at midnight UTC.
func (d Day) Time() time.Time { return d.t }

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool { return d.t.IsZero() }

// Weekday returns the day of the week.
func (d Day) Weekday() time.Weekday { return d.t.Weekday() }

// AddDays returns the Day n calendar days after d (before, if n < 0).
func (d Day) AddDays(n int) Day { return Day{t: d.t.AddDate(0, 0, n)} }

// Before reports whether d falls on an earlier calendar day than other.
func (d Day) Before(other Day) bool { return d.t.Before(other.t) }

// After reports whether d falls on a later calendar day than other.
func (d Day) After(other Day) bool { return d.t.After(other.t) }

// Equal reports whether d and other are the same calendar day.
func (d Day) Equal(other Day) bool { return d.t.Equal(other.t) }

// DaysUntil returns the number of calendar days from d to other.
// Negative if other is earlier.
func (d Day) DaysUntil(other Day) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

// String returns the Day in ISO "2006-01-02" format.
func (d Day) String() string { return d.t.Format("2006-01-02") }

// WeekStart returns the Monday on or before d.
func (d Day) WeekStart() Day {
	offset := int(d.t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return d.AddDays(-offset)
}

// ParseDay parses a date expression into a Day.
// Supports: "2024-01-15", "Jan 2 2006", "January 2 2006",
// "2 Jan 2006", "2 January 2006", "today", "tomorrow".
func ParseDay(s string) (Day, error) {
	return parseDay(s, time.Now())
}

// parseDay parses a date expression relative to now.
func parseDay(s string, now time.Time) (Day, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	switch s {
	case "today":
		return DayOf(now), nil
	case "tomorrow":
		return DayOf(now).AddDays(1), nil
	}

	layouts := []string{
		"2006-01-02",
		"jan 2 2006",
		"january 2 2006",
		"2 jan 2006",
		"2 january 2006",
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DayOf(t), nil
		}
	}

	return Day{}, fmt.Errorf("unrecognized date %q", s)
}
