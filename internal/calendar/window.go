package calendar

import "fmt"

// Window is an inclusive calendar date range.
type Window struct {
	Start Day
	End   Day
}

// NewWindow builds a Window, failing if end precedes start.
func NewWindow(start, end Day) (Window, error) {
	w := Window{Start: start, End: end}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// Validate returns ErrInvalidRange if the window's end precedes its start.
func (w Window) Validate() error {
	if w.End.Before(w.Start) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidRange, w.Start, w.End)
	}
	return nil
}

// Days returns the number of calendar days in the window, inclusive.
func (w Window) Days() int {
	return w.Start.DaysUntil(w.End) + 1
}

// Contains reports whether d falls within the window.
func (w Window) Contains(d Day) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// Overlaps reports whether w and other share at least one calendar day.
func (w Window) Overlaps(other Window) bool {
	return !w.Start.After(other.End) && !other.Start.After(w.End)
}

// OverlapDays returns the number of calendar days shared by w and other,
// zero if they do not overlap.
func (w Window) OverlapDays(other Window) int {
	start := w.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := w.End
	if other.End.Before(end) {
		end = other.End
	}
	if end.Before(start) {
		return 0
	}
	return start.DaysUntil(end) + 1
}

func (w Window) String() string {
	return fmt.Sprintf("[%s, %s]", w.Start, w.End)
}
