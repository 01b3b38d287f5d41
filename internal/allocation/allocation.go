// Package allocation detects resource over-allocation across time-bounded
// percentage assignments and aggregates allocated days per week for heatmap
// reporting.
//
// Like the calendar engine it is pure: callers project their phase and task
// rows into Assignment values per call, and nothing is retained between
// calls.
package allocation

import (
	"fmt"

	"github.com/ib823/cockpit-engine/internal/calendar"
)

// Assignment is a time-bounded percentage claim on a resource's capacity.
// The window is the owning phase's or task's window; Percent is in (0, 100].
type Assignment struct {
	Window     calendar.Window
	ResourceID string
	Percent    float64
}

// Conflict is a pair of overlapping assignments whose combined percentage
// exceeds a resource's capacity.
type Conflict struct {
	A, B    Assignment
	Overlap calendar.Window
	Percent float64 // combined percentage of the pair
}

// DetectOverallocation reports whether any pair of assignments overlaps in
// time with a combined percentage above 100.
//
// Detection is pairwise only: three assignments that never exceed 100 in any
// pair are not flagged even if all three run concurrently and sum above 100.
func DetectOverallocation(assignments []Assignment) (bool, error) {
	conflicts, err := OverallocatedPairs(assignments)
	if err != nil {
		return false, err
	}
	return len(conflicts) > 0, nil
}

// OverallocatedPairs returns every conflicting assignment pair, in input
// order. A malformed window fails with calendar.ErrInvalidRange before any
// pair is examined.
func OverallocatedPairs(assignments []Assignment) ([]Conflict, error) {
	for i, a := range assignments {
		if err := a.Window.Validate(); err != nil {
			return nil, fmt.Errorf("assignment %d: %w", i, err)
		}
	}

	var conflicts []Conflict
	for i := 0; i < len(assignments); i++ {
		for j := i + 1; j < len(assignments); j++ {
			a, b := assignments[i], assignments[j]
			if !a.Window.Overlaps(b.Window) {
				continue
			}
			if a.Percent+b.Percent <= 100 {
				continue
			}

			start := a.Window.Start
			if b.Window.Start.After(start) {
				start = b.Window.Start
			}
			end := a.Window.End
			if b.Window.End.Before(end) {
				end = b.Window.End
			}
			conflicts = append(conflicts, Conflict{
				A:       a,
				B:       b,
				Overlap: calendar.Window{Start: start, End: end},
				Percent: a.Percent + b.Percent,
			})
		}
	}
	return conflicts, nil
}

// ResourceOverallocated reports whether the assignments referencing
// resourceID contain a conflicting pair.
func ResourceOverallocated(assignments []Assignment, resourceID string) (bool, error) {
	return DetectOverallocation(ForResource(assignments, resourceID))
}

// ForResource returns the subset of assignments referencing resourceID.
func ForResource(assignments []Assignment, resourceID string) []Assignment {
	var out []Assignment
	for _, a := range assignments {
		if a.ResourceID == resourceID {
			out = append(out, a)
		}
	}
	return out
}
