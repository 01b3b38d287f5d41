package calendar

import (
	"fmt"
	"strings"

	"github.com/teambition/rrule-go"
)

// ParseRecurrence parses a raw RRULE string ("FREQ=YEARLY;BYMONTH=1;..."),
// with or without the "RRULE:" prefix.
func ParseRecurrence(s string) (*rrule.RRule, error) {
	raw := strings.ToUpper(strings.TrimSpace(s))
	raw = strings.TrimPrefix(raw, "RRULE:")
	r, err := rrule.StrToRRule(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid RRULE %q: %w", raw, err)
	}
	return r, nil
}

// ExpandRecurring evaluates a recurrence rule into concrete holiday rows
// between from and to (inclusive). For unbounded rules (no DTSTART), DTSTART
// is set to the range start so Between() covers the requested window; bounded
// rules keep their own DTSTART.
func ExpandRecurring(name string, rule *rrule.RRule, from, to Day) ([]Holiday, error) {
	opts := rule.OrigOptions
	if opts.Dtstart.IsZero() {
		opts.Dtstart = from.Time()
	}
	r, err := rrule.NewRRule(opts)
	if err != nil {
		return nil, err
	}

	dates := r.Between(from.Time(), to.Time(), true)
	holidays := make([]Holiday, 0, len(dates))
	for _, d := range dates {
		holidays = append(holidays, Holiday{Date: DayOf(d), Name: name})
	}
	return holidays, nil
}
