package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyEngine has no holidays in any region, so only weekends are skipped.
func emptyEngine() *Engine {
	return NewEngineWithTables(map[Region]*Table{
		RegionABMY: NewTable(RegionABMY, nil),
		RegionABSG: NewTable(RegionABSG, nil),
		RegionABVN: NewTable(RegionABVN, nil),
	})
}

func TestIsWeekend(t *testing.T) {
	assert.False(t, IsWeekend(NewDay(2026, time.January, 1))) // Thursday
	assert.False(t, IsWeekend(NewDay(2026, time.January, 2))) // Friday
	assert.True(t, IsWeekend(NewDay(2026, time.January, 3)))  // Saturday
	assert.True(t, IsWeekend(NewDay(2026, time.January, 4)))  // Sunday
	assert.False(t, IsWeekend(NewDay(2026, time.January, 5))) // Monday
}

func TestIsHoliday(t *testing.T) {
	e := NewEngine()

	// Federal Territory Day (observed), ABMY only
	ftDay := NewDay(2026, time.February, 2)

	holiday, err := e.IsHoliday(ftDay, RegionABMY)
	require.NoError(t, err)
	assert.True(t, holiday)

	holiday, err = e.IsHoliday(ftDay, RegionABSG)
	require.NoError(t, err)
	assert.False(t, holiday)

	_, err = e.IsHoliday(ftDay, Region("ABXX"))
	assert.ErrorIs(t, err, ErrUnknownRegion)
}

func TestIsWorkingDay(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name   string
		day    Day
		region Region
		want   bool
	}{
		{"regular thursday", NewDay(2026, time.March, 5), RegionABMY, true},
		{"saturday", NewDay(2026, time.March, 7), RegionABMY, false},
		{"sunday", NewDay(2026, time.March, 8), RegionABMY, false},
		{"ABMY holiday on a monday", NewDay(2026, time.February, 2), RegionABMY, false},
		{"same monday is a working day in ABSG", NewDay(2026, time.February, 2), RegionABSG, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.IsWorkingDay(tt.day, tt.region)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddWorkingDays(t *testing.T) {
	t.Run("five days forward over a weekend, no holidays", func(t *testing.T) {
		e := emptyEngine()

		// Thursday Jan 1 + 5 working days skips Sat Jan 3 / Sun Jan 4.
		got, err := e.AddWorkingDays(NewDay(2026, time.January, 1), 5, RegionABMY)
		require.NoError(t, err)
		assert.Equal(t, "2026-01-08", got.String())
	})

	t.Run("holidays are skipped", func(t *testing.T) {
		e := NewEngine()

		// Friday Jan 30 + 1 skips the weekend and Feb 2 (Federal Territory
		// Day, observed) and lands on Tuesday Feb 3.
		got, err := e.AddWorkingDays(NewDay(2026, time.January, 30), 1, RegionABMY)
		require.NoError(t, err)
		assert.Equal(t, "2026-02-03", got.String())
	})

	t.Run("offset zero returns base unchanged even on a non-working day", func(t *testing.T) {
		e := NewEngine()

		holiday := NewDay(2026, time.February, 2)
		got, err := e.AddWorkingDays(holiday, 0, RegionABMY)
		require.NoError(t, err)
		assert.True(t, holiday.Equal(got))

		saturday := NewDay(2026, time.January, 3)
		got, err = e.AddWorkingDays(saturday, 0, RegionABMY)
		require.NoError(t, err)
		assert.True(t, saturday.Equal(got))
	})

	t.Run("negative offset steps backward", func(t *testing.T) {
		e := emptyEngine()

		// Monday Jan 5 - 1 working day lands on Friday Jan 2.
		got, err := e.AddWorkingDays(NewDay(2026, time.January, 5), -1, RegionABMY)
		require.NoError(t, err)
		assert.Equal(t, "2026-01-02", got.String())
	})

	t.Run("unknown region", func(t *testing.T) {
		e := NewEngine()

		_, err := e.AddWorkingDays(NewDay(2026, time.January, 1), 1, Region("XX"))
		assert.ErrorIs(t, err, ErrUnknownRegion)
	})
}

func TestAddWorkingDaysMonotonic(t *testing.T) {
	e := NewEngine()
	base := NewDay(2026, time.January, 1)

	prev := base
	for n := 1; n <= 40; n++ {
		got, err := e.AddWorkingDays(base, n, RegionABMY)
		require.NoError(t, err)
		assert.True(t, got.After(prev), "offset %d: %s not after %s", n, got, prev)
		prev = got
	}
}

func TestAddWorkingDaysRoundTrip(t *testing.T) {
	e := NewEngine()

	// Epoch is a working day; stepping n working days forward must count
	// back to exactly n via WorkingDaysBetween(epoch+1, result).
	epoch := NewDay(2026, time.January, 2) // Friday, not a holiday

	for n := 0; n <= 60; n++ {
		d, err := e.AddWorkingDays(epoch, n, RegionABMY)
		require.NoError(t, err)

		back, err := e.BusinessDayOffset(epoch, d, RegionABMY)
		require.NoError(t, err)
		assert.Equal(t, n, back, "round-trip failed at offset %d (landed on %s)", n, d)
	}
}

func TestWorkingDaysBetween(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name       string
		start, end Day
		region     Region
		want       int
	}{
		{
			name:   "single working day",
			start:  NewDay(2026, time.March, 5),
			end:    NewDay(2026, time.March, 5),
			region: RegionABMY,
			want:   1,
		},
		{
			name:   "single holiday counts zero",
			start:  NewDay(2026, time.February, 2),
			end:    NewDay(2026, time.February, 2),
			region: RegionABMY,
			want:   0,
		},
		{
			name:   "single weekend day counts zero",
			start:  NewDay(2026, time.March, 7),
			end:    NewDay(2026, time.March, 7),
			region: RegionABMY,
			want:   0,
		},
		{
			// 2026-02-01 (Sun) .. 2026-02-28 (Sat): 28 calendar days,
			// 8 weekend days, 3 weekday holidays (Feb 2, 17, 18).
			name:   "february 2026 ABMY",
			start:  NewDay(2026, time.February, 1),
			end:    NewDay(2026, time.February, 28),
			region: RegionABMY,
			want:   17,
		},
		{
			// Same window, ABSG: no Feb 2 holiday.
			name:   "february 2026 ABSG",
			start:  NewDay(2026, time.February, 1),
			end:    NewDay(2026, time.February, 28),
			region: RegionABSG,
			want:   18,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.WorkingDaysBetween(tt.start, tt.end, tt.region)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("inverted range fails", func(t *testing.T) {
		_, err := e.WorkingDaysBetween(NewDay(2026, time.March, 10), NewDay(2026, time.March, 1), RegionABMY)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

// Holiday subtraction identity: working days == calendar days - weekend days
// - weekday holidays, checked over a long mixed window.
func TestWorkingDaysSubtractionIdentity(t *testing.T) {
	e := NewEngine()

	start := NewDay(2026, time.January, 1)
	end := NewDay(2026, time.June, 30)

	calendarDays := start.DaysUntil(end) + 1
	weekendDays := 0
	for d := start; !d.After(end); d = d.AddDays(1) {
		if IsWeekend(d) {
			weekendDays++
		}
	}

	holidays, err := e.HolidaysInRange(start, end, RegionABMY)
	require.NoError(t, err)
	weekdayHolidays := 0
	for _, h := range holidays {
		if !IsWeekend(h.Date) {
			weekdayHolidays++
		}
	}

	got, err := e.WorkingDaysBetween(start, end, RegionABMY)
	require.NoError(t, err)
	assert.Equal(t, calendarDays-weekendDays-weekdayHolidays, got)
}

func TestHolidaysInRange(t *testing.T) {
	e := NewEngine()

	t.Run("window with exactly two holidays", func(t *testing.T) {
		got, err := e.HolidaysInRange(NewDay(2025, time.May, 1), NewDay(2025, time.May, 31), RegionABMY)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Labour Day", got[0].Name)
		assert.Equal(t, "2025-05-01", got[0].Date.String())
		assert.Equal(t, "Wesak Day", got[1].Name)
		assert.Equal(t, "2025-05-12", got[1].Date.String())
	})

	t.Run("ascending order across years", func(t *testing.T) {
		got, err := e.HolidaysInRange(NewDay(2025, time.December, 1), NewDay(2026, time.March, 1), RegionABSG)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		for i := 1; i < len(got); i++ {
			assert.True(t, got[i-1].Date.Before(got[i].Date))
		}
	})

	t.Run("empty window", func(t *testing.T) {
		got, err := e.HolidaysInRange(NewDay(2026, time.March, 2), NewDay(2026, time.March, 6), RegionABMY)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("inverted range fails", func(t *testing.T) {
		_, err := e.HolidaysInRange(NewDay(2026, time.March, 6), NewDay(2026, time.March, 2), RegionABMY)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestEmptyTableBehavesWeekendOnly(t *testing.T) {
	e := emptyEngine()

	// Full week Mon-Sun: 5 working days, holidays or not.
	got, err := e.WorkingDaysBetween(NewDay(2026, time.February, 2), NewDay(2026, time.February, 8), RegionABMY)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestParseRegion(t *testing.T) {
	tests := []struct {
		input   string
		want    Region
		wantErr bool
	}{
		{input: "ABMY", want: RegionABMY},
		{input: "absg", want: RegionABSG},
		{input: " abvn ", want: RegionABVN},
		{input: "ABUS", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRegion(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownRegion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
