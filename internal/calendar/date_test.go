package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	// Fixed reference time: Wednesday, January 15, 2025
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    Day
		wantErr bool
	}{
		{
			name:  "today",
			input: "today",
			want:  NewDay(2025, time.January, 15),
		},
		{
			name:  "tomorrow",
			input: "tomorrow",
			want:  NewDay(2025, time.January, 16),
		},
		{
			name:  "ISO date",
			input: "2026-02-02",
			want:  NewDay(2026, time.February, 2),
		},
		{
			name:  "jan 2 2026",
			input: "jan 2 2026",
			want:  NewDay(2026, time.January, 2),
		},
		{
			name:  "2 january 2026",
			input: "2 january 2026",
			want:  NewDay(2026, time.January, 2),
		},
		{
			name:  "whitespace and case",
			input: "  2026-02-02  ",
			want:  NewDay(2026, time.February, 2),
		},
		{
			name:    "garbage",
			input:   "someday",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDay(tt.input, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestDayOfNormalizesTimeOfDay(t *testing.T) {
	loc := time.FixedZone("MYT", 8*60*60)
	late := time.Date(2026, 3, 15, 23, 59, 59, 0, loc)

	d := DayOf(late)

	assert.Equal(t, "2026-03-15", d.String())
	assert.Equal(t, time.UTC, d.Time().Location())
	assert.True(t, d.Equal(NewDay(2026, time.March, 15)))
}

func TestDayArithmetic(t *testing.T) {
	d := NewDay(2026, time.February, 27)

	// Leap year: 2026 is not a leap year, 2028 is.
	assert.Equal(t, "2026-03-01", d.AddDays(2).String())
	assert.Equal(t, "2028-02-29", NewDay(2028, time.February, 28).AddDays(1).String())

	// Year boundary
	assert.Equal(t, "2027-01-01", NewDay(2026, time.December, 31).AddDays(1).String())

	assert.Equal(t, 2, d.DaysUntil(NewDay(2026, time.March, 1)))
	assert.Equal(t, -2, NewDay(2026, time.March, 1).DaysUntil(d))
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		day  Day
		want string
	}{
		{"monday maps to itself", NewDay(2026, time.March, 2), "2026-03-02"},
		{"wednesday", NewDay(2026, time.March, 4), "2026-03-02"},
		{"sunday maps to previous monday", NewDay(2026, time.March, 8), "2026-03-02"},
		{"saturday", NewDay(2026, time.March, 7), "2026-03-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.day.WeekStart()
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}
