package allocation

import (
	"fmt"

	"github.com/ib823/cockpit-engine/internal/calendar"
)

// WeekBucket is a Monday-aligned 7-day aggregation unit. AllocatedDays is
// the sum over matching assignments of their calendar-day overlap with the
// bucket, weighted by allocation percentage.
type WeekBucket struct {
	WeekStart     calendar.Day
	AllocatedDays float64
}

// Utilization classifies a bucket's allocated-day total for rendering.
type Utilization int

const (
	Idle          Utilization = iota // allocatedDays == 0
	Optimal                          // 0 < allocatedDays <= 5
	Full                             // 5 < allocatedDays <= 6
	Overallocated                    // allocatedDays > 6
)

func (u Utilization) String() string {
	switch u {
	case Idle:
		return "idle"
	case Optimal:
		return "optimal"
	case Full:
		return "full"
	case Overallocated:
		return "overallocated"
	}
	return "unknown"
}

// Classify maps a bucket's allocated days onto a Utilization band. The
// thresholds are advisory rendering constants; nothing in this package
// enforces them.
func Classify(allocatedDays float64) Utilization {
	switch {
	case allocatedDays <= 0:
		return Idle
	case allocatedDays <= 5:
		return Optimal
	case allocatedDays <= 6:
		return Full
	}
	return Overallocated
}

// WeeklyAllocation partitions projectWindow into Monday-aligned weeks and
// sums each assignment's prorated contribution per week for one resource.
// Proration is by calendar days shared with the bucket (capped at 7 by
// construction), not working days.
//
// Buckets run from the Monday on or before projectWindow.Start through the
// Monday on or before projectWindow.End.
func WeeklyAllocation(assignments []Assignment, resourceID string, projectWindow calendar.Window, region calendar.Region) ([]WeekBucket, error) {
	if !region.Valid() {
		return nil, fmt.Errorf("%w: %q", calendar.ErrUnknownRegion, region)
	}
	if err := projectWindow.Validate(); err != nil {
		return nil, fmt.Errorf("project window: %w", err)
	}

	matching := ForResource(assignments, resourceID)
	for i, a := range matching {
		if err := a.Window.Validate(); err != nil {
			return nil, fmt.Errorf("assignment %d: %w", i, err)
		}
	}

	lastWeek := projectWindow.End.WeekStart()

	var buckets []WeekBucket
	for week := projectWindow.Start.WeekStart(); !week.After(lastWeek); week = week.AddDays(7) {
		bucket := calendar.Window{Start: week, End: week.AddDays(6)}

		total := 0.0
		for _, a := range matching {
			days := a.Window.OverlapDays(bucket)
			if days == 0 {
				continue
			}
			total += float64(days) * a.Percent / 100
		}
		buckets = append(buckets, WeekBucket{WeekStart: week, AllocatedDays: total})
	}
	return buckets, nil
}
