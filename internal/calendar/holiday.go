package calendar

import "sort"

// Holiday is a single public holiday in a region's table.
type Holiday struct {
	Date   Day
	Name   string
	Region Region
}

// Table is an immutable, date-sorted holiday table for one region.
// Build one with NewTable; do not mutate it afterwards.
type Table struct {
	region   Region
	holidays []Holiday
	byDate   map[Day]Holiday
}

// NewTable builds a Table from holiday rows. Rows are sorted ascending by
// date and deduplicated; the first row wins on duplicate dates.
func NewTable(region Region, holidays []Holiday) *Table {
	byDate := make(map[Day]Holiday, len(holidays))
	deduped := make([]Holiday, 0, len(holidays))
	for _, h := range holidays {
		h.Region = region
		if _, seen := byDate[h.Date]; seen {
			continue
		}
		byDate[h.Date] = h
		deduped = append(deduped, h)
	}
	sort.Slice(deduped, func(i, j int) bool {
		return deduped[i].Date.Before(deduped[j].Date)
	})
	return &Table{region: region, holidays: deduped, byDate: byDate}
}

// Region returns the region this table belongs to.
func (t *Table) Region() Region { return t.region }

// Len returns the number of holidays in the table.
func (t *Table) Len() int { return len(t.holidays) }

// Contains reports whether d is a holiday in this table.
func (t *Table) Contains(d Day) bool {
	_, ok := t.byDate[d]
	return ok
}

// Lookup returns the holiday on d, if any.
func (t *Table) Lookup(d Day) (Holiday, bool) {
	h, ok := t.byDate[d]
	return h, ok
}

// InRange returns all holidays with start <= date <= end, ascending.
func (t *Table) InRange(start, end Day) []Holiday {
	var out []Holiday
	for _, h := range t.holidays {
		if h.Date.Before(start) {
			continue
		}
		if h.Date.After(end) {
			break
		}
		out = append(out, h)
	}
	return out
}

// Merge returns a new table containing the rows of t plus extra. Rows in t
// win on duplicate dates.
func (t *Table) Merge(extra []Holiday) *Table {
	combined := make([]Holiday, 0, len(t.holidays)+len(extra))
	combined = append(combined, t.holidays...)
	combined = append(combined, extra...)
	return NewTable(t.region, combined)
}
