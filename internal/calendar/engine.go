// Package calendar converts between calendar dates and business-day offsets
// per region, skipping weekends and region-specific public holidays.
//
// All operations are pure functions over immutable holiday tables; an Engine
// is safe for concurrent use without synchronization.
package calendar

import (
	"fmt"
	"time"
)

// Engine answers working-day queries against a fixed set of per-region
// holiday tables.
type Engine struct {
	tables map[Region]*Table
}

// NewEngine returns an engine backed by the built-in holiday tables.
func NewEngine() *Engine {
	return &Engine{tables: builtin}
}

// NewEngineWithTables returns an engine backed by the given tables. Regions
// absent from the map fall back to their built-in table; a region mapped to
// an empty table behaves as weekend-only.
func NewEngineWithTables(tables map[Region]*Table) *Engine {
	merged := make(map[Region]*Table, len(builtin))
	for r, t := range builtin {
		merged[r] = t
	}
	for r, t := range tables {
		merged[r] = t
	}
	return &Engine{tables: merged}
}

// Table returns the holiday table for a region.
func (e *Engine) Table(region Region) (*Table, error) {
	t, ok := e.tables[region]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
	return t, nil
}

// IsWeekend reports whether d falls on a Saturday or Sunday.
func IsWeekend(d Day) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsHoliday reports whether d is a listed holiday in the region's table.
func (e *Engine) IsHoliday(d Day, region Region) (bool, error) {
	t, err := e.Table(region)
	if err != nil {
		return false, err
	}
	return t.Contains(d), nil
}

// IsWorkingDay reports whether d is neither a weekend day nor a holiday in
// the region.
func (e *Engine) IsWorkingDay(d Day, region Region) (bool, error) {
	holiday, err := e.IsHoliday(d, region)
	if err != nil {
		return false, err
	}
	return !IsWeekend(d) && !holiday, nil
}

// AddWorkingDays returns the date reached by stepping offset working days
// from base. The offset counts steps taken: offset 0 returns base unchanged
// regardless of whether base itself is a working day. Negative offsets step
// backward.
func (e *Engine) AddWorkingDays(base Day, offset int, region Region) (Day, error) {
	t, err := e.Table(region)
	if err != nil {
		return Day{}, err
	}

	step := 1
	if offset < 0 {
		step = -1
		offset = -offset
	}

	d := base
	for remaining := offset; remaining > 0; {
		d = d.AddDays(step)
		if !IsWeekend(d) && !t.Contains(d) {
			remaining--
		}
	}
	return d, nil
}

// WorkingDaysBetween counts the working days d with start <= d <= end.
// Returns ErrInvalidRange if end precedes start.
func (e *Engine) WorkingDaysBetween(start, end Day, region Region) (int, error) {
	t, err := e.Table(region)
	if err != nil {
		return 0, err
	}
	if end.Before(start) {
		return 0, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDays(1) {
		if !IsWeekend(d) && !t.Contains(d) {
			count++
		}
	}
	return count, nil
}

// BusinessDayOffset returns the number of working days strictly after epoch
// up to and including d. It is the inverse of AddWorkingDays from the same
// epoch: AddWorkingDays(epoch, BusinessDayOffset(epoch, d), region) lands on
// the last working day <= d.
func (e *Engine) BusinessDayOffset(epoch, d Day, region Region) (int, error) {
	if d.Before(epoch) {
		return 0, fmt.Errorf("%w: %s > %s", ErrInvalidRange, epoch, d)
	}
	if epoch.Equal(d) {
		return 0, nil
	}
	return e.WorkingDaysBetween(epoch.AddDays(1), d, region)
}

// HolidaysInRange returns the region's holidays with start <= date <= end,
// ascending by date. Returns ErrInvalidRange if end precedes start.
func (e *Engine) HolidaysInRange(start, end Day, region Region) ([]Holiday, error) {
	t, err := e.Table(region)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}
	return t.InRange(start, end), nil
}
