// Package timeline lays estimated phases onto the business-day calendar,
// producing the concrete date windows a Gantt rendering consumes.
package timeline

import (
	"fmt"
	"math"

	"github.com/ib823/cockpit-engine/internal/calendar"
	"github.com/ib823/cockpit-engine/internal/estimator"
)

// Phase is an estimated phase anchored to calendar dates.
type Phase struct {
	Name        string
	EffortMD    float64
	WorkingDays int
	Window      calendar.Window
}

// Build schedules phases end-to-end from start, converting each phase's
// duration in months to working days and walking the region's calendar.
// Each phase begins on the first working day at or after the previous
// phase's end; the project starts on the first working day at or after
// start. Phases shorter than one working day are stretched to one.
func Build(engine *calendar.Engine, region calendar.Region, start calendar.Day, phases []estimator.PhaseBreakdown, workdaysPerMonth float64) ([]Phase, error) {
	if workdaysPerMonth <= 0 {
		return nil, fmt.Errorf("workdays per month must be positive, got %g", workdaysPerMonth)
	}

	cursor, err := nextWorkingDay(engine, start, region)
	if err != nil {
		return nil, err
	}

	out := make([]Phase, 0, len(phases))
	for _, p := range phases {
		days := int(math.Round(p.DurationMonths * workdaysPerMonth))
		if days < 1 {
			days = 1
		}

		// The phase occupies `days` working days starting at cursor, so
		// its end is days-1 steps further.
		end, err := engine.AddWorkingDays(cursor, days-1, region)
		if err != nil {
			return nil, err
		}

		out = append(out, Phase{
			Name:        p.Name,
			EffortMD:    p.EffortMD,
			WorkingDays: days,
			Window:      calendar.Window{Start: cursor, End: end},
		})

		cursor, err = engine.AddWorkingDays(end, 1, region)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// nextWorkingDay returns d if it is a working day, otherwise the first
// working day after it.
func nextWorkingDay(engine *calendar.Engine, d calendar.Day, region calendar.Region) (calendar.Day, error) {
	working, err := engine.IsWorkingDay(d, region)
	if err != nil {
		return calendar.Day{}, err
	}
	if working {
		return d, nil
	}
	return engine.AddWorkingDays(d, 1, region)
}
